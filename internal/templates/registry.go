package templates

import (
	"fmt"
	"strings"
)

// Template describes a page kind for listings and prompts.
type Template struct {
	Kind        Kind   `json:"kind"`
	Description string `json:"description"`
}

// registry is the closed set of page kinds.
var registry = map[Kind]Template{
	WithLoader:         {Kind: WithLoader, Description: "Loader fetches data before render"},
	DeferredLoader:     {Kind: DeferredLoader, Description: "Deferred loader rendered through Suspense and Await"},
	WithParams:         {Kind: WithParams, Description: "Reads the :id route parameter"},
	AuthenticatedRoute: {Kind: AuthenticatedRoute, Description: "Redirects to /login unless authenticated"},
	LazyLoaded:         {Kind: LazyLoaded, Description: "Lazily imported component behind Suspense"},
	NotFound:           {Kind: NotFound, Description: "Static 404 page"},
	Layout:             {Kind: Layout, Description: "Header, main and footer shell"},
}

// order is the presentation order of kinds.
var order = []Kind{WithLoader, DeferredLoader, WithParams, AuthenticatedRoute, LazyLoaded, NotFound, Layout}

// List returns all templates in presentation order.
func List() []Template {
	out := make([]Template, 0, len(order))
	for _, k := range order {
		out = append(out, registry[k])
	}
	return out
}

// ValidKinds returns all kind names in presentation order.
func ValidKinds() []string {
	out := make([]string, 0, len(order))
	for _, k := range order {
		out = append(out, string(k))
	}
	return out
}

// ParseKind parses a kind name. Names are case-sensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown template %q; valid templates: %s", s, strings.Join(ValidKinds(), ", "))
	}
	return k, nil
}
