package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"filesort/internal/domain"
	"filesort/internal/errors"
	"filesort/internal/logging"
	"filesort/internal/services/files"
)

// fileReader loads the metadata of one validated path.
type fileReader interface {
	Read(path string) (domain.FileReference, error)
}

// SizeCommand prints the formatted size of one file.
type SizeCommand struct {
	reader    fileReader
	validator fileValidator
	logger    *logging.Logger
}

// NewSizeCommand creates a new size command.
func NewSizeCommand(reader fileReader, validator fileValidator, logger *logging.Logger) *SizeCommand {
	return &SizeCommand{
		reader:    reader,
		validator: validator,
		logger:    logger,
	}
}

// Execute runs the size command.
func (c *SizeCommand) Execute(ctx context.Context, args []string) (string, error) {
	path, err := singleFile(c.validator, args)
	if err != nil {
		return "", err
	}

	ref, err := c.reader.Read(path)
	if err != nil {
		cause := err
		if merr, ok := err.(*errors.MetadataError); ok {
			cause = merr.Err
		}
		return "", errors.NewOperationError(filepath.Base(path), cause)
	}

	c.logger.WithFile(path).DebugContext(ctx, "Read file size", "bytes", ref.Size)
	return fmt.Sprintf("%s size: %s", ref.Name, files.FormatSize(ref.Size)), nil
}
