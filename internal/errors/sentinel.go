package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrUserDeclined indicates the user answered "no" to a gating confirmation.
	// It is not a failure; commands terminate cleanly with exit code 0.
	ErrUserDeclined = errors.New("declined by user")

	// ErrPrecondition indicates a required directory or manifest is absent.
	ErrPrecondition = errors.New("precondition missing")

	// ErrNotFound indicates a file or directory was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed user input.
	ErrValidation = errors.New("validation error")

	// ErrIO indicates a filesystem read or write failed.
	ErrIO = errors.New("i/o failure")

	// ErrGeneration indicates an unexpected failure inside page generation.
	ErrGeneration = errors.New("generation error")
)
