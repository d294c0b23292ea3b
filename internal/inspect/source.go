// Package inspect infers project conventions: where application source lives,
// whether the project uses TypeScript, and whether routing is installed.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/manifest"
	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/prompt"
	"github.com/routegen/cli/internal/templates"
)

// DefaultSourceDir is offered when no candidate is found.
const DefaultSourceDir = "src"

// Prompt keys used by the inspector.
const (
	KeySourceDir        = "sourceDir"
	KeySourceDirConfirm = "sourceDirConfirm"
	KeyExtension        = "extension"
)

// candidateDirs are checked in order for an entry-point file.
var candidateDirs = []string{"src", "app", "lib", "source"}

var (
	entryFileRegex = regexp.MustCompile(`^(index|App)\.(js|jsx|ts|tsx)$`)
	outDirRegex    = regexp.MustCompile(`--out-dir\s+(\S+)`)
)

// Inspector detects project conventions under Root and asks Prompter to settle
// anything detection cannot decide alone.
type Inspector struct {
	Root     string
	Prompter prompt.Prompter

	// SourceDir, when set, is used instead of detection.
	SourceDir string

	// Extension, when set, is used instead of TypeScript detection.
	Extension templates.Extension

	manifest *manifest.Manifest
	loaded   bool
}

// New returns an Inspector for the project at root.
func New(root string, p prompt.Prompter) *Inspector {
	return &Inspector{Root: root, Prompter: p}
}

// Manifest returns the project manifest, reading it once. It is nil when missing.
func (i *Inspector) Manifest() *manifest.Manifest {
	if !i.loaded {
		i.manifest, _ = manifest.Read(i.Root)
		i.loaded = true
	}
	return i.manifest
}

// SourceCandidates lists candidate source directories under root: known directory
// names holding an entry-point file, then the first --out-dir script hint when novel.
func SourceCandidates(root string, m *manifest.Manifest) []string {
	var found []string
	for _, dir := range candidateDirs {
		if hasEntryFile(filepath.Join(root, dir)) {
			output.Debug("potential source directory", "dir", dir)
			found = append(found, dir)
		}
	}

	if hint, ok := ScriptHint(m); ok && !slices.Contains(found, hint) {
		output.Debug("source directory hint from scripts", "dir", hint)
		found = append(found, hint)
	}

	return found
}

// ScriptHint returns the first --out-dir argument across the manifest scripts,
// with a leading "./" removed.
func ScriptHint(m *manifest.Manifest) (string, bool) {
	for _, script := range m.ScriptValues() {
		if match := outDirRegex.FindStringSubmatch(script); match != nil {
			return strings.TrimPrefix(match[1], "./"), true
		}
	}
	return "", false
}

func hasEntryFile(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && entryFileRegex.MatchString(e.Name()) {
			return true
		}
	}
	return false
}

// DetectSourceDirectory returns the source directory relative to Root.
//
// One candidate is confirmed, several are chosen from, and none (or a rejected
// single candidate) falls back to free-text input defaulting to "src".
// Choosing between several candidates has no default.
// The result is not checked for existence.
func (i *Inspector) DetectSourceDirectory(ctx context.Context) (string, error) {
	if i.SourceDir != "" {
		return i.SourceDir, nil
	}

	found := SourceCandidates(i.Root, i.Manifest())

	switch len(found) {
	case 0:
	case 1:
		output.Info("Auto-detected source directory", "dir", found[0])
		ok, err := i.Prompter.Confirm(ctx, prompt.Confirm{
			Key:     KeySourceDirConfirm,
			Message: fmt.Sprintf("Detected source directory: %s. Is this correct?", output.StyleNoun.Render(found[0])),
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if ok {
			return found[0], nil
		}
		output.Info("Detected directory rejected")
	default:
		output.Warn("Multiple potential source directories detected", "candidates", strings.Join(found, ", "))
		dir, err := i.Prompter.Select(ctx, prompt.Select{
			Key:     KeySourceDir,
			Message: "Select the correct source directory:",
			Options: prompt.Options(found...),
		})
		if errors.Is(err, oerrors.ErrValidation) {
			return "", oerrors.NewValidationError(
				fmt.Sprintf("multiple source directories found: %s", strings.Join(found, ", ")),
				"Pass --source-dir to choose one.",
			)
		}
		return dir, err
	}

	if len(found) == 0 {
		output.Warn("Unable to detect the source directory automatically")
	}
	return i.Prompter.Input(ctx, prompt.Input{
		Key:      KeySourceDir,
		Message:  "Enter your source directory:",
		Default:  DefaultSourceDir,
		Validate: templates.ValidateDirectoryName,
	})
}
