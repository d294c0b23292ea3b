package cmd

import (
	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/prompt"
)

// newPrompter returns the answer source for a command. Flag values pre-answer
// their questions; the rest go to the terminal, or take their defaults when
// there is no terminal or assumeYes is set.
func newPrompter(assumeYes bool, presets map[string]string) prompt.Prompter {
	var base prompt.Prompter = prompt.Defaults{}
	if !assumeYes && output.IsTTY() {
		base = prompt.NewTerminal()
	}
	output.Debug("prompter selected", "interactive", !assumeYes && output.IsTTY(), "presets", len(presets))
	return prompt.NewPreset(base, presets)
}
