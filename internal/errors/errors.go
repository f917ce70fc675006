// Package errors provides structured error handling for the pipeline with
// context propagation and process exit code mapping.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error for reporting and exit codes.
type ErrorType string

const (
	// TypeDataFormat indicates a malformed input row or lexicon line
	TypeDataFormat ErrorType = "data_format"
	// TypeInsufficientData indicates fewer records than the requested selection size
	TypeInsufficientData ErrorType = "insufficient_data"
	// TypeEmptyInput indicates no tokens survived filtering, so the mean is undefined
	TypeEmptyInput ErrorType = "empty_input"
	// TypeTimeout indicates the loader's I/O deadline was exceeded
	TypeTimeout ErrorType = "timeout"
	// TypeInternal indicates an unexpected failure inside the pipeline
	TypeInternal ErrorType = "internal"
)

// Error represents a structured error with type, message, and context.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the process exit code for this error type.
// Codes follow the sysexits convention where one fits.
func (e *Error) ExitCode() int {
	switch e.Type {
	case TypeDataFormat:
		return 65
	case TypeInsufficientData:
		return 66
	case TypeEmptyInput:
		return 67
	case TypeTimeout:
		return 75
	case TypeInternal:
		return 70
	default:
		return 70
	}
}

// DataFormatError creates a new data-format error (malformed input).
func DataFormatError(message string) *Error {
	return &Error{
		Type:    TypeDataFormat,
		Message: message,
		Context: make(map[string]any),
	}
}

// InsufficientDataError creates a new insufficient-data error.
func InsufficientDataError(message string) *Error {
	return &Error{
		Type:    TypeInsufficientData,
		Message: message,
		Context: make(map[string]any),
	}
}

// EmptyInputError creates a new empty-input error (average undefined).
func EmptyInputError(message string) *Error {
	return &Error{
		Type:    TypeEmptyInput,
		Message: message,
		Context: make(map[string]any),
	}
}

// TimeoutError creates a new timeout error (I/O deadline exceeded).
func TimeoutError(message string, cause error) *Error {
	return &Error{
		Type:    TypeTimeout,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// InternalError creates a new internal error.
func InternalError(message string, cause error) *Error {
	return &Error{
		Type:    TypeInternal,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context fields to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// TypeOf returns the ErrorType of err if it is (or wraps) an *Error,
// or TypeInternal otherwise.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// ExitCodeFor returns the exit code for any error, defaulting to the
// internal-error code for errors outside the pipeline taxonomy.
func ExitCodeFor(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return 70
}
