package commands

import (
	"context"
	"fmt"
	"strings"

	"filesort/internal/domain"
	"filesort/internal/errors"
	"filesort/internal/logging"
	"filesort/internal/services/sorter"
)

const (
	// MinSortArgs is the fewest files a sort command accepts.
	MinSortArgs = 2
	// MaxSortArgs is the most files a sort command accepts.
	MaxSortArgs = 10
)

// metadataReader loads FileReferences for validated paths.
type metadataReader interface {
	ReadAll(paths []string) ([]domain.FileReference, error)
}

// SortCommand orders 2 to 10 files by a fixed criterion.
type SortCommand struct {
	criterion sorter.Criterion
	validator fileValidator
	reader    metadataReader
	logger    *logging.Logger
}

// NewSortCommand creates a new sort command for criterion.
func NewSortCommand(
	criterion sorter.Criterion,
	validator fileValidator,
	reader metadataReader,
	logger *logging.Logger,
) *SortCommand {
	return &SortCommand{
		criterion: criterion,
		validator: validator,
		reader:    reader,
		logger:    logger,
	}
}

// Execute runs the sort command.
func (c *SortCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) < MinSortArgs {
		return "", errors.NewTooFewArgumentsError(len(args), MinSortArgs)
	}
	if len(args) > MaxSortArgs {
		return "", errors.NewTooManyArgumentsError(len(args), MaxSortArgs)
	}

	paths, err := c.validator.ValidateAll(args)
	if err != nil {
		return "", err
	}

	refs, err := c.reader.ReadAll(paths)
	if err != nil {
		return "", err
	}

	sorted := sorter.Sort(refs, c.criterion)
	c.logger.DebugContext(ctx, "Sorted files", "criterion", c.criterion.String(), "count", len(sorted))

	return fmt.Sprintf("%s: %s", c.criterion.Label(), strings.Join(sorter.Names(sorted), ", ")), nil
}
