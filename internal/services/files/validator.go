package files

import (
	"path/filepath"
	"strings"

	"filesort/internal/domain"
	"filesort/internal/errors"
	"filesort/internal/logging"
)

// allowedExtensions lists the accepted file extensions in display order.
//
//nolint:gochecknoglobals // Package-level allow-list for extension validation
var allowedExtensions = []string{".txt", ".json", ".csv"}

// HasAllowedExtension reports whether name ends in an allow-listed extension,
// ignoring case.
func HasAllowedExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Validator applies the shared file-argument rule: allow-listed extension,
// existing path, not a directory.
type Validator struct {
	fs     domain.FileSystemAdapter
	logger *logging.Logger
}

// NewValidator creates a new validator.
func NewValidator(fs domain.FileSystemAdapter, logger *logging.Logger) *Validator {
	return &Validator{
		fs:     fs,
		logger: logger,
	}
}

// Validate checks a single file argument and returns the cleaned path.
func (v *Validator) Validate(arg string) (string, error) {
	if arg == "" {
		return "", errors.NewMissingFileError()
	}

	if !HasAllowedExtension(arg) {
		v.logger.WithFile(arg).Debug("Rejected file extension")
		return "", errors.NewExtensionError(arg, allowedExtensions)
	}

	path := filepath.Clean(arg)
	info, err := v.fs.Stat(path)
	if err != nil {
		v.logger.WithFile(path).Debug("File argument not accessible", "error", err)
		return "", errors.NewNotFoundError(arg, err)
	}
	if info.IsDir() {
		return "", errors.NewNotFoundError(arg, nil)
	}

	return path, nil
}

// ValidateAll validates args in order and stops at the first failure.
func (v *Validator) ValidateAll(args []string) ([]string, error) {
	paths := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := v.Validate(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
