// Package manifest reads the project descriptor (package.json).
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/routegen/cli/internal/output"
)

// FileName is the manifest file looked up at the project root.
const FileName = "package.json"

// Manifest is the parsed project descriptor. It is derived fresh on every invocation.
type Manifest struct {
	Name            string            `json:"name,omitempty"`
	Version         string            `json:"version,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`

	// PackageManager is the corepack "packageManager" field, e.g. "pnpm@9.1.0".
	PackageManager string `json:"packageManager,omitempty"`
}

// Read parses the manifest at root. The boolean is false when the file is absent,
// unreadable or not a JSON object; that is the Missing state and is never an empty
// Manifest, so callers can tell "no dependencies" from "not a project root".
func Read(root string) (*Manifest, bool) {
	path := filepath.Join(root, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		output.Debug("manifest not readable", "path", path, "error", err)
		return nil, false
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		output.Debug("manifest not parseable", "path", path, "error", err)
		return nil, false
	}

	return &m, true
}

// HasDependency reports whether name is listed in dependencies or devDependencies.
// A nil manifest has no dependencies.
func (m *Manifest) HasDependency(name string) bool {
	if m == nil {
		return false
	}
	if _, ok := m.Dependencies[name]; ok {
		return true
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// HasDevDependency reports whether name is listed in devDependencies.
func (m *Manifest) HasDevDependency(name string) bool {
	if m == nil {
		return false
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// ScriptValues returns the script command strings ordered by script name.
func (m *Manifest) ScriptValues() []string {
	if m == nil || len(m.Scripts) == 0 {
		return nil
	}

	names := make([]string, 0, len(m.Scripts))
	for name := range m.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)

	values := make([]string, 0, len(names))
	for _, name := range names {
		values = append(values, m.Scripts[name])
	}
	return values
}
