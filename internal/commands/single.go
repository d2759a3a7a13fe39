package commands

import (
	"filesort/internal/errors"
)

// fileValidator is the subset of the shared validator the handlers need.
type fileValidator interface {
	Validate(arg string) (string, error)
	ValidateAll(args []string) ([]string, error)
}

// singleFile validates the first argument of a single-file command.
// Arguments after the first are ignored.
func singleFile(v fileValidator, args []string) (string, error) {
	if len(args) == 0 {
		return "", errors.NewMissingFileError()
	}
	return v.Validate(args[0])
}
