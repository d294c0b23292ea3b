// Package errors provides the error taxonomy and exit codes for the route-generator CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Exit codes. A clean decline and a hard failure must stay distinguishable.
const (
	// ExitSuccess indicates the command completed or the user declined.
	ExitSuccess = 0

	// ExitGeneralError indicates a precondition failure or unexpected error.
	ExitGeneralError = 1

	// ExitValidationError indicates input that could not be accepted.
	ExitValidationError = 2

	// ExitIOError indicates a filesystem failure.
	ExitIOError = 3
)

// DetailError captures structured error information with actionable guidance.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}

	if e.Hint != "" {
		b.WriteString("\n  Hint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewPreconditionError creates an error for a missing directory or manifest.
func NewPreconditionError(message, location, hint string) error {
	return &DetailError{
		Type:     "precondition missing",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrPrecondition,
	}
}

// NewNotFoundError creates a precondition error for a missing file or directory.
// The result matches both ErrPrecondition and ErrNotFound.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    fmt.Errorf("%w: %w", ErrPrecondition, ErrNotFound),
	}
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, hint string) error {
	return &DetailError{
		Type:    "validation failed",
		Message: message,
		Hint:    hint,
		Cause:   ErrValidation,
	}
}

// NewIOError creates an I/O failure that keeps the underlying message.
func NewIOError(location string, cause error) error {
	return &DetailError{
		Type:     "i/o failure",
		Message:  cause.Error(),
		Location: location,
		Cause:    fmt.Errorf("%w: %w", ErrIO, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with an exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed is true when the command already reported the error to the user.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrUserDeclined):
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns a human-readable name for an exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitIOError:
		return "I/O Error"
	default:
		return "Unknown"
	}
}
