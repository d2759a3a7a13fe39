package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"filesort/internal/domain"
	"filesort/internal/logging"
	"filesort/internal/services/files"
)

// TypeCommand prints the type label of one file.
type TypeCommand struct {
	fs        domain.FileSystemAdapter
	validator fileValidator
	logger    *logging.Logger
}

// NewTypeCommand creates a new type command.
func NewTypeCommand(fs domain.FileSystemAdapter, validator fileValidator, logger *logging.Logger) *TypeCommand {
	return &TypeCommand{
		fs:        fs,
		validator: validator,
		logger:    logger,
	}
}

// Execute runs the type command. The label comes from the extension; the
// sniffed content type is only logged.
func (c *TypeCommand) Execute(ctx context.Context, args []string) (string, error) {
	path, err := singleFile(c.validator, args)
	if err != nil {
		return "", err
	}

	name := filepath.Base(path)
	label := files.TypeLabel(name)
	c.logContentType(ctx, path, label)

	return fmt.Sprintf("%s type: %s", name, label), nil
}

func (c *TypeCommand) logContentType(ctx context.Context, path, label string) {
	if !c.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	logger := c.logger.WithFile(path)

	f, err := c.fs.Open(path)
	if err != nil {
		logger.DebugContext(ctx, "Could not open file for content sniffing", "error", err)
		return
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		logger.DebugContext(ctx, "Content sniffing failed", "error", err)
		return
	}
	logger.DebugContext(ctx, "Detected content type", "mime", mtype.String(), "label", label)
}
