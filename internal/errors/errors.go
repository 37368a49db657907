package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrRecordNotFound is returned when a detail lookup finds no record with the given id
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownView is returned when a view name does not match any directory view
	ErrUnknownView = errors.New("unknown view")

	// ErrUnsupportedFormat is returned when a data file extension has no decoder
	ErrUnsupportedFormat = errors.New("unsupported data format")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// RecordNotFoundError represents a failed detail lookup with context.
// ID keeps the identifier as it was requested, so malformed ids are reported verbatim.
type RecordNotFoundError struct {
	Collection string
	ID         string
}

func (e *RecordNotFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.Collection, e.ID)
}

func (e *RecordNotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// NewRecordNotFoundError creates a new RecordNotFoundError
func NewRecordNotFoundError(collection, id string) *RecordNotFoundError {
	return &RecordNotFoundError{Collection: collection, ID: id}
}

// UnknownViewError represents a request for a view that does not exist
type UnknownViewError struct {
	View string
}

func (e *UnknownViewError) Error() string {
	return fmt.Sprintf("view named '%s' does not exist", e.View)
}

func (e *UnknownViewError) Is(target error) bool {
	return target == ErrUnknownView
}

// NewUnknownViewError creates a new UnknownViewError
func NewUnknownViewError(view string) *UnknownViewError {
	return &UnknownViewError{View: view}
}

// UnsupportedFormatError represents a data file that cannot be decoded
type UnsupportedFormatError struct {
	Path string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("no decoder for data file '%s' (want .yaml, .yml, .json or .gob)", e.Path)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// NewUnsupportedFormatError creates a new UnsupportedFormatError
func NewUnsupportedFormatError(path string) *UnsupportedFormatError {
	return &UnsupportedFormatError{Path: path}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
