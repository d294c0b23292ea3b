// Package prompt defines typed interactive questions and the answer sources that
// resolve them: a terminal form, scripted answers, preset values and defaults.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"slices"

	oerrors "github.com/routegen/cli/internal/errors"
)

// ErrNoAnswer is returned when an answer source has nothing for a question.
var ErrNoAnswer = errors.New("no answer available")

// Input is a free-text question.
type Input struct {
	// Key identifies the question to non-interactive answer sources.
	Key     string
	Message string

	// Default is used when the answer is empty.
	Default string

	// Validate rejects malformed answers. Interactive sources re-ask.
	Validate func(string) error
}

// Confirm is a yes/no question.
type Confirm struct {
	Key     string
	Message string
	Default bool
}

// Option is one choice of a Select question.
type Option struct {
	Label string
	Value string
}

// Select is a single-choice question.
type Select struct {
	Key     string
	Message string
	Options []Option

	// Default is the preselected option value. Empty means no default.
	Default string
}

// Values returns the option values in order.
func (s Select) Values() []string {
	values := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		values = append(values, o.Value)
	}
	return values
}

// Options builds options whose label equals their value.
func Options(values ...string) []Option {
	opts := make([]Option, 0, len(values))
	for _, v := range values {
		opts = append(opts, Option{Label: v, Value: v})
	}
	return opts
}

// Prompter resolves questions to typed answers.
type Prompter interface {
	Input(ctx context.Context, q Input) (string, error)
	Confirm(ctx context.Context, q Confirm) (bool, error)
	Select(ctx context.Context, q Select) (string, error)
}

// resolveInput applies the default and the validator to a raw answer.
func resolveInput(q Input, raw string) (string, error) {
	if raw == "" {
		raw = q.Default
	}
	if q.Validate != nil {
		if err := q.Validate(raw); err != nil {
			return "", invalid(q.Key, err)
		}
	}
	return raw, nil
}

// resolveSelect checks that raw is one of the options.
func resolveSelect(q Select, raw string) (string, error) {
	if raw == "" {
		raw = q.Default
	}
	if !slices.Contains(q.Values(), raw) {
		return "", invalid(q.Key, fmt.Errorf("%q is not one of %v", raw, q.Values()))
	}
	return raw, nil
}

func invalid(key string, err error) error {
	if errors.Is(err, oerrors.ErrValidation) {
		return fmt.Errorf("answer for %s: %w", key, err)
	}
	return oerrors.NewValidationError(fmt.Sprintf("answer for %s: %v", key, err), "")
}
