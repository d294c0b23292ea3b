package prompt

import (
	"context"
	"errors"
	"fmt"
)

// Scripted answers questions from queued values keyed by question key. A value that
// fails validation is discarded and the next queued value is tried, the way an
// interactive prompt re-asks. It is used by tests and by replayed sessions.
type Scripted struct {
	answers map[string][]any

	// Asked records question keys in the order they were asked.
	Asked []string
}

// NewScripted creates an empty scripted prompter.
func NewScripted() *Scripted {
	return &Scripted{answers: make(map[string][]any)}
}

// Answer queues answers for a question key. Input and Select take strings,
// Confirm takes bools.
func (s *Scripted) Answer(key string, values ...any) *Scripted {
	s.answers[key] = append(s.answers[key], values...)
	return s
}

// Remaining returns the number of unconsumed answers for key.
func (s *Scripted) Remaining(key string) int {
	return len(s.answers[key])
}

func (s *Scripted) next(key string) (any, error) {
	queue := s.answers[key]
	if len(queue) == 0 {
		return nil, fmt.Errorf("question %q: %w", key, ErrNoAnswer)
	}
	s.answers[key] = queue[1:]
	return queue[0], nil
}

// Input implements Prompter.
func (s *Scripted) Input(_ context.Context, q Input) (string, error) {
	s.Asked = append(s.Asked, q.Key)
	var lastErr error
	for {
		v, err := s.next(q.Key)
		if err != nil {
			return "", errors.Join(err, lastErr)
		}
		raw, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("question %q: expected string answer, got %T", q.Key, v)
		}
		answer, err := resolveInput(q, raw)
		if err != nil {
			lastErr = err
			continue
		}
		return answer, nil
	}
}

// Confirm implements Prompter.
func (s *Scripted) Confirm(_ context.Context, q Confirm) (bool, error) {
	s.Asked = append(s.Asked, q.Key)
	v, err := s.next(q.Key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("question %q: expected bool answer, got %T", q.Key, v)
	}
	return b, nil
}

// Select implements Prompter.
func (s *Scripted) Select(_ context.Context, q Select) (string, error) {
	s.Asked = append(s.Asked, q.Key)
	var lastErr error
	for {
		v, err := s.next(q.Key)
		if err != nil {
			return "", errors.Join(err, lastErr)
		}
		raw, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("question %q: expected string answer, got %T", q.Key, v)
		}
		answer, err := resolveSelect(q, raw)
		if err != nil {
			lastErr = err
			continue
		}
		return answer, nil
	}
}
