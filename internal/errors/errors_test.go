//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrUserDeclined, ErrPrecondition)
	assert.NotEqual(t, ErrValidation, ErrIO)
	assert.NotEqual(t, ErrGeneration, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "precondition missing",
		Message:  "routes folder does not exist",
		Location: "/tmp/app/src/routes",
		Hint:     "Run the init command or create your folder",
	}

	out := detail.Error()

	assert.Contains(t, out, "precondition missing: routes folder does not exist")
	assert.Contains(t, out, "Location: /tmp/app/src/routes")
	assert.Contains(t, out, "Hint: Run the init command")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "msg", Cause: ErrValidation}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewPreconditionError(t *testing.T) {
	err := NewPreconditionError("no package.json found", "/tmp/app", "run from the project root")

	assert.True(t, errors.Is(err, ErrPrecondition))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "/tmp/app", detail.Location)
	assert.Equal(t, "run from the project root", detail.Hint)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("routes folder does not exist", "src/routes", "")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, ExitGeneralError, ExitCodeFromError(err))
}

func TestNewIOError(t *testing.T) {
	err := NewIOError("/tmp/app/src/routes/Home.tsx", fs.ErrPermission)

	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.Contains(t, err.Error(), "permission denied")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "nil error returns success", err: nil, wantCode: ExitSuccess},
		{name: "user declined returns success", err: fmt.Errorf("init: %w", ErrUserDeclined), wantCode: ExitSuccess},
		{name: "validation error", err: NewValidationError("bad folder", ""), wantCode: ExitValidationError},
		{name: "io error", err: NewIOError("x", errors.New("disk full")), wantCode: ExitIOError},
		{name: "precondition error", err: NewPreconditionError("missing", "", ""), wantCode: ExitGeneralError},
		{name: "explicit exit error", err: &ExitError{Code: 7, Err: errors.New("x")}, wantCode: 7},
		{name: "unknown error", err: errors.New("boom"), wantCode: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ExitCodeFromError(tt.err))
		})
	}
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrGeneration, "rendering page")

	assert.True(t, errors.Is(wrapped, ErrGeneration))
	assert.Contains(t, wrapped.Error(), "rendering page")
}
