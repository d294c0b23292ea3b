package inspect

import (
	"github.com/routegen/cli/internal/manifest"
	"github.com/routegen/cli/internal/pkgmanager"
)

// RoutingDependency is the package generated pages import.
const RoutingDependency = "react-router-dom"

// HasRoutingDependency reports whether the routing package is a dependency or
// devDependency. A missing manifest has no dependencies.
func (i *Inspector) HasRoutingDependency() bool {
	return i.Manifest().HasDependency(RoutingDependency)
}

// Facts is everything detection finds without asking.
type Facts struct {
	Root              string               `json:"root"`
	ManifestFound     bool                 `json:"manifestFound"`
	SourceCandidates  []string             `json:"sourceCandidates"`
	TypeScript        TypeScriptPreference `json:"typescript"`
	RoutingDependency bool                 `json:"routingDependency"`
	PackageManager    pkgmanager.Detection `json:"packageManager"`
}

// Collect gathers Facts for the project at root.
func Collect(root string) Facts {
	m, ok := manifest.Read(root)

	candidates := SourceCandidates(root, m)
	if candidates == nil {
		candidates = []string{}
	}

	return Facts{
		Root:              root,
		ManifestFound:     ok,
		SourceCandidates:  candidates,
		TypeScript:        InferTypeScript(root, m),
		RoutingDependency: m.HasDependency(RoutingDependency),
		PackageManager:    pkgmanager.Detect(root, m),
	}
}
