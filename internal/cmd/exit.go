package cmd

import (
	"errors"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/output"
)

// exitError maps a command failure to an ExitError carrying its exit code.
// A user decline is a clean exit and returns nil.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, oerrors.ErrUserDeclined) {
		output.Debug("stopped by user", "reason", err)
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	code := oerrors.ExitCodeFromError(err)
	output.Error(err.Error())
	output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
	return &oerrors.ExitError{Code: code, Err: err, Printed: true}
}
