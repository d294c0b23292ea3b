package prompt

import (
	"context"
	"strconv"

	oerrors "github.com/routegen/cli/internal/errors"
)

// Preset answers questions from fixed values (flags, config) and delegates everything
// else to Next. A preset value that fails validation is an error: there is nobody to
// re-ask.
type Preset struct {
	Values map[string]string
	Next   Prompter
}

// NewPreset creates a preset prompter over next. Empty values are ignored.
func NewPreset(next Prompter, values map[string]string) *Preset {
	clean := make(map[string]string, len(values))
	for k, v := range values {
		if v != "" {
			clean[k] = v
		}
	}
	return &Preset{Values: clean, Next: next}
}

// Input implements Prompter.
func (p *Preset) Input(ctx context.Context, q Input) (string, error) {
	if v, ok := p.Values[q.Key]; ok {
		return resolveInput(q, v)
	}
	return p.Next.Input(ctx, q)
}

// Confirm implements Prompter.
func (p *Preset) Confirm(ctx context.Context, q Confirm) (bool, error) {
	if v, ok := p.Values[q.Key]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, oerrors.NewValidationError("answer for "+q.Key+" must be true or false", "")
		}
		return b, nil
	}
	return p.Next.Confirm(ctx, q)
}

// Select implements Prompter.
func (p *Preset) Select(ctx context.Context, q Select) (string, error) {
	if v, ok := p.Values[q.Key]; ok {
		return resolveSelect(q, v)
	}
	return p.Next.Select(ctx, q)
}
