package errors

import (
	"errors"
	"io/fs"
	"testing"
)

func TestValidationErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *ValidationError
		expected string
	}{
		{"missing file", NewMissingFileError(), "No file given. Please provide a file."},
		{
			"extension",
			NewExtensionError("report.pdf", []string{".txt", ".json", ".csv"}),
			"Invalid file type. Allowed extensions are .txt, .json, .csv.",
		},
		{"too few", NewTooFewArgumentsError(1, 2), "Too few arguments. Please provide at least 2 files."},
		{"too many", NewTooManyArgumentsError(11, 10), "Too many arguments. Please provide a maximum of 10 files."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.err.Error() != test.expected {
				t.Errorf("Expected error message %q, got %q", test.expected, test.err.Error())
			}
			if !IsValidation(test.err) {
				t.Error("Expected ValidationError to be identified as validation error")
			}
			if !errors.Is(test.err, ErrInvalidInput) {
				t.Error("Expected ValidationError to match ErrInvalidInput")
			}
		})
	}
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("data/missing.txt", fs.ErrNotExist)

	expectedMsg := "File not found: data/missing.txt"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsNotFound(err) {
		t.Error("Expected NotFoundError to be identified as NotFound")
	}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("Expected NotFoundError to wrap the underlying cause")
	}
}

func TestMetadataError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewMetadataError("a.txt", cause)

	expectedMsg := "Unable to read file metadata for a.txt: permission denied"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsMetadata(err) {
		t.Error("Expected MetadataError to be identified as metadata error")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected MetadataError to wrap the underlying cause")
	}
}

func TestCollisionError(t *testing.T) {
	err := NewCollisionError("bin/deleted", "bin/deleted/a.txt")

	expectedMsg := "Unable to move file; a file with the same name already exists in bin/deleted."
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsCollision(err) {
		t.Error("Expected CollisionError to be identified as collision")
	}
}

func TestOperationError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewOperationError("a.txt", cause)

	expectedMsg := "Operation failed for a.txt: disk full"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !errors.Is(err, ErrOperation) {
		t.Error("Expected OperationError to match ErrOperation")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected OperationError to wrap the underlying cause")
	}
}

func TestConfigurationError(t *testing.T) {
	cause := errors.New("yaml: line 2: mapping values are not allowed")
	err := NewConfigurationError("config_format", "yaml", "failed to unmarshal config", cause)

	expectedMsg := "configuration error in field 'config_format': failed to unmarshal config"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsConfiguration(err) {
		t.Error("Expected ConfigurationError to be identified as configuration error")
	}

	noField := NewConfigurationError("", "", "missing", nil)
	if noField.Error() != "configuration error: missing" {
		t.Errorf("Unexpected message without field: %q", noField.Error())
	}
}

func TestErrorCategoriesDoNotOverlap(t *testing.T) {
	err := NewNotFoundError("x.txt", nil)

	if IsValidation(err) {
		t.Error("NotFoundError must not match ErrInvalidInput")
	}
	if IsMetadata(err) {
		t.Error("NotFoundError must not match ErrMetadata")
	}
}
