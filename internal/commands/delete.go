package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"filesort/internal/errors"
	"filesort/internal/logging"
)

// trashMover relocates a file into the trash directory.
type trashMover interface {
	Move(ctx context.Context, path string) (string, error)
}

// DeleteCommand moves one file into the trash directory.
type DeleteCommand struct {
	mover     trashMover
	validator fileValidator
	logger    *logging.Logger
}

// NewDeleteCommand creates a new delete command.
func NewDeleteCommand(mover trashMover, validator fileValidator, logger *logging.Logger) *DeleteCommand {
	return &DeleteCommand{
		mover:     mover,
		validator: validator,
		logger:    logger,
	}
}

// Execute runs the delete command.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) (string, error) {
	path, err := singleFile(c.validator, args)
	if err != nil {
		return "", err
	}

	name := filepath.Base(path)
	logger := c.logger.WithFile(path)

	target, err := c.mover.Move(ctx, path)
	if err != nil {
		logger.DebugContext(ctx, "Delete failed", "error", err)
		if errors.IsCollision(err) {
			return "", err
		}
		return "", errors.NewOperationError(name, err)
	}

	return fmt.Sprintf("Moved %s to %s", name, target), nil
}
