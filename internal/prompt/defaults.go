package prompt

import (
	"context"
	"fmt"

	oerrors "github.com/routegen/cli/internal/errors"
)

// Defaults answers every question with its default. It is used without a terminal
// and with --yes. Questions without a default fail with a validation error.
type Defaults struct{}

// Input implements Prompter.
func (Defaults) Input(_ context.Context, q Input) (string, error) {
	if q.Default == "" {
		return "", required(q.Key)
	}
	return resolveInput(q, q.Default)
}

// Confirm implements Prompter.
func (Defaults) Confirm(_ context.Context, q Confirm) (bool, error) {
	return q.Default, nil
}

// Select implements Prompter.
func (Defaults) Select(_ context.Context, q Select) (string, error) {
	if q.Default == "" {
		return "", required(q.Key)
	}
	return resolveSelect(q, q.Default)
}

func required(key string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("%s requires an answer and has no default", key),
		"Run in a terminal or pass the value as a flag.",
	)
}
