// Package pkgmanager detects the project's JavaScript package manager and installs
// dependencies with it.
package pkgmanager

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/routegen/cli/internal/manifest"
)

// Name is a package manager binary name.
type Name string

const (
	NPM  Name = "npm"
	Yarn Name = "yarn"
	PNPM Name = "pnpm"
	Bun  Name = "bun"
)

// Default is used when nothing in the project points to a package manager.
const Default = NPM

// lockfiles maps lockfile names to their package manager, in lookup order.
var lockfiles = []struct {
	file string
	name Name
}{
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// IsValid reports whether n is a known package manager.
func (n Name) IsValid() bool {
	switch n {
	case NPM, Yarn, PNPM, Bun:
		return true
	}
	return false
}

// String returns the binary name.
func (n Name) String() string {
	return string(n)
}

// Detection is a detected package manager and what pointed to it.
type Detection struct {
	Name Name `json:"name"`

	// Source is "packageManager", a lockfile name, or "default".
	Source string `json:"source"`
}

// Detect picks the package manager for the project at root. The manifest
// "packageManager" field wins, then lockfiles, then npm.
func Detect(root string, m *manifest.Manifest) Detection {
	if m != nil && m.PackageManager != "" {
		name, _, _ := strings.Cut(m.PackageManager, "@")
		if n := Name(name); n.IsValid() {
			return Detection{Name: n, Source: "packageManager"}
		}
	}

	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(root, lf.file)); err == nil {
			return Detection{Name: lf.name, Source: lf.file}
		}
	}

	return Detection{Name: Default, Source: "default"}
}

// AddArgs returns the arguments that add pkg as a dependency.
func AddArgs(n Name, pkg string) []string {
	if n == NPM {
		return []string{"install", pkg}
	}
	return []string{"add", pkg}
}
