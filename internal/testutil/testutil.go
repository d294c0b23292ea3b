// Package testutil provides test helpers for building throwaway React projects.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// Project is a project tree rooted in a per-test temp directory.
type Project struct {
	t    *testing.T
	Root string
}

// NewProject creates an empty project directory removed when the test ends.
func NewProject(t *testing.T) *Project {
	t.Helper()
	return &Project{t: t, Root: t.TempDir()}
}

// Path joins parts onto the project root.
func (p *Project) Path(parts ...string) string {
	return filepath.Join(append([]string{p.Root}, parts...)...)
}

// File writes a file relative to the root, creating parent directories.
func (p *Project) File(name, content string) *Project {
	p.t.Helper()
	WriteFile(p.t, p.Root, name, content)
	return p
}

// Dir creates a directory relative to the root.
func (p *Project) Dir(name string) *Project {
	p.t.Helper()
	if err := os.MkdirAll(p.Path(name), 0o755); err != nil {
		p.t.Fatalf("failed to create dir %s: %v", name, err)
	}
	return p
}

// Manifest is the subset of package.json that tests write.
type Manifest struct {
	Name            string            `json:"name,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	PackageManager  string            `json:"packageManager,omitempty"`
}

// Manifest writes package.json.
func (p *Project) Manifest(m Manifest) *Project {
	p.t.Helper()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		p.t.Fatalf("failed to marshal manifest: %v", err)
	}
	return p.File("package.json", string(data))
}

// ReactApp writes a manifest depending on react-router-dom and a src/ entry point.
func (p *Project) ReactApp() *Project {
	p.t.Helper()
	return p.Manifest(Manifest{
		Name:         "app",
		Dependencies: map[string]string{"react": "^18.3.1", "react-router-dom": "^6.26.0"},
	}).File("src/main.jsx", "import App from './App'\n").File("src/App.jsx", "export default function App() {}\n")
}

// Read returns the content of a file relative to the root.
func (p *Project) Read(name string) string {
	p.t.Helper()
	data, err := os.ReadFile(p.Path(name))
	if err != nil {
		p.t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
