package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	oerrors "github.com/routegen/cli/internal/errors"
)

// Terminal asks questions with charmbracelet/huh forms. Invalid input is re-asked
// in place by the form.
type Terminal struct {
	// Accessible switches huh to its screen-reader friendly mode.
	Accessible bool
}

// NewTerminal creates a terminal prompter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Input implements Prompter.
func (t *Terminal) Input(ctx context.Context, q Input) (string, error) {
	value := q.Default
	field := huh.NewInput().
		Title(q.Message).
		Placeholder(q.Default).
		Value(&value).
		Validate(func(s string) error {
			if q.Validate == nil {
				return nil
			}
			if s == "" {
				s = q.Default
			}
			return q.Validate(s)
		})

	if err := t.run(ctx, field); err != nil {
		return "", err
	}
	return resolveInput(q, value)
}

// Confirm implements Prompter.
func (t *Terminal) Confirm(ctx context.Context, q Confirm) (bool, error) {
	value := q.Default
	field := huh.NewConfirm().
		Title(q.Message).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := t.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

// Select implements Prompter.
func (t *Terminal) Select(ctx context.Context, q Select) (string, error) {
	options := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		options = append(options, huh.NewOption(o.Label, o.Value))
	}

	value := q.Default
	field := huh.NewSelect[string]().
		Title(q.Message).
		Options(options...).
		Value(&value)

	if err := t.run(ctx, field); err != nil {
		return "", err
	}
	return resolveSelect(q, value)
}

func (t *Terminal) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).WithAccessible(t.Accessible)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("prompt aborted: %w", oerrors.ErrUserDeclined)
		}
		return fmt.Errorf("running prompt: %w", err)
	}
	return nil
}
