// Package errors defines the error values and types used at hubdeck's edges:
// the column store, configuration and the command line. The panel core never
// returns errors.
//
// Creating errors:
//
//	err := errors.NewStoreError("failed to save columns", cause).WithPath(path)
//	err := errors.NewNotFoundError("column", "col-1")
//	err := errors.NewValidationError("index out of range").WithField("index").WithValue(7)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrColumnNotFound) { ... }
//
//	var storeErr *errors.StoreError
//	if errors.As(err, &storeErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers need a single import.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors
var (
	// ErrColumnNotFound indicates that no column has the requested ID.
	ErrColumnNotFound = New("column not found")
	// ErrStoreCorrupted indicates that the column file could not be decoded.
	ErrStoreCorrupted = New("column store corrupted")
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrIndexOutOfRange indicates a column move past either end.
	ErrIndexOutOfRange = New("index out of range")
)

// HubdeckError is implemented by every error type in this package.
type HubdeckError interface {
	error
	Unwrap() error
	IsUserFacing() bool
}

type baseError struct {
	message    string
	cause      error
	userFacing bool
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Unwrap() error      { return e.cause }
func (e *baseError) IsUserFacing() bool { return e.userFacing }

// format renders "prefix [k=v, ...]: message: cause".
func (e *baseError) format(prefix string, parts []string) string {
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// StoreError represents a failure reading or writing the column store.
//
// Example:
//
//	err := errors.NewStoreError("failed to decode columns", errors.ErrStoreCorrupted)
//	err = err.WithPath("/home/me/.config/hubdeck/columns.yaml")
//	fmt.Println(err) // "store error [path=/home/...]: failed to decode columns: column store corrupted"
type StoreError struct {
	baseError
	Path string
}

// NewStoreError creates a new StoreError.
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithPath adds the store file path to the error context.
func (e *StoreError) WithPath(path string) *StoreError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *StoreError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, "path="+e.Path)
	}
	return e.format("store error", parts)
}

// Is matches any *StoreError as well as the wrapped cause.
func (e *StoreError) Is(target error) bool {
	if _, ok := target.(*StoreError); ok {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// NotFoundError represents a resource that could not be found.
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Is matches any *NotFoundError, ErrColumnNotFound for columns, and the
// wrapped cause.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	if target == ErrColumnNotFound && e.ResourceType == "column" {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("unknown column type").WithField("type").WithValue("boards")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, "field="+e.Field)
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return e.format("validation error", parts)
}

// Is matches any *ValidationError, ErrInvalidInput, and the wrapped cause.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

// IsUserFacing reports whether err is safe to show on the terminal as is.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var hubErr HubdeckError
	if As(err, &hubErr) {
		return hubErr.IsUserFacing()
	}
	return false
}

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
