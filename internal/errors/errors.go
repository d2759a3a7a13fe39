// Package errors provides custom error types and utilities for filesort.
//
// Every error type renders the exact message shown to the user, so command
// handlers can print err.Error() directly. Categories:
// - Validation errors (missing argument, disallowed extension, argument count)
// - Not-found errors
// - Metadata errors
// - Move and collision errors
// - Configuration errors
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error categories for filesort operations
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrMetadata      = errors.New("metadata error")
	ErrCollision     = errors.New("target already exists")
	ErrConfiguration = errors.New("configuration error")
	ErrOperation     = errors.New("operation failed")
)

// Messages printed for argument problems.
const (
	MsgNoFile      = "No file given. Please provide a file."
	MsgTooFewArgs  = "Too few arguments. Please provide at least %d files."
	MsgTooManyArgs = "Too many arguments. Please provide a maximum of %d files."
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return errors.Is(target, ErrInvalidInput)
}

// NewValidationError creates a new validation error
func NewValidationError(field, value, rule, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Rule:    rule,
		Message: message,
	}
}

// NewMissingFileError reports an empty or absent file argument.
func NewMissingFileError() *ValidationError {
	return NewValidationError("file", "", "required", MsgNoFile)
}

// NewExtensionError reports a file name outside the extension allow-list.
func NewExtensionError(name string, allowed []string) *ValidationError {
	return NewValidationError(
		"file",
		name,
		"extension",
		fmt.Sprintf("Invalid file type. Allowed extensions are %s.", strings.Join(allowed, ", ")),
	)
}

// NewTooFewArgumentsError reports fewer sort arguments than min.
func NewTooFewArgumentsError(got, minimum int) *ValidationError {
	return NewValidationError("args", fmt.Sprint(got), "min", fmt.Sprintf(MsgTooFewArgs, minimum))
}

// NewTooManyArgumentsError reports more sort arguments than max.
func NewTooManyArgumentsError(got, maximum int) *ValidationError {
	return NewValidationError("args", fmt.Sprint(got), "max", fmt.Sprintf(MsgTooManyArgs, maximum))
}

// IsValidation checks if an error is validation-related
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// NotFoundError reports a path that does not exist or is a directory.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

func (e *NotFoundError) Is(target error) bool {
	return errors.Is(target, ErrNotFound)
}

// NewNotFoundError creates a new not-found error
func NewNotFoundError(path string, err error) *NotFoundError {
	return &NotFoundError{Path: path, Err: err}
}

// IsNotFound checks if an error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// MetadataError reports a failure to read file attributes.
type MetadataError struct {
	Name string
	Err  error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("Unable to read file metadata for %s: %v", e.Name, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

func (e *MetadataError) Is(target error) bool {
	return errors.Is(target, ErrMetadata)
}

// NewMetadataError creates a new metadata error
func NewMetadataError(name string, err error) *MetadataError {
	return &MetadataError{Name: name, Err: err}
}

// IsMetadata checks if an error is metadata-related
func IsMetadata(err error) bool {
	return errors.Is(err, ErrMetadata)
}

// CollisionError reports a move whose destination appeared after probing.
type CollisionError struct {
	Dir    string
	Target string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("Unable to move file; a file with the same name already exists in %s.", e.Dir)
}

func (e *CollisionError) Is(target error) bool {
	return errors.Is(target, ErrCollision)
}

// NewCollisionError creates a new collision error
func NewCollisionError(dir, target string) *CollisionError {
	return &CollisionError{Dir: dir, Target: target}
}

// IsCollision checks if an error is a move collision
func IsCollision(err error) bool {
	return errors.Is(err, ErrCollision)
}

// OperationError reports an I/O failure while acting on a single file.
type OperationError struct {
	Name string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("Operation failed for %s: %v", e.Name, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (e *OperationError) Is(target error) bool {
	return errors.Is(target, ErrOperation)
}

// NewOperationError creates a new operation error
func NewOperationError(name string, err error) *OperationError {
	return &OperationError{Name: name, Err: err}
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(target, ErrConfiguration)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, value, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// IsConfiguration checks if an error is configuration-related
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
