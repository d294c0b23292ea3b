// Package templates provides the page templates and their rendering.
package templates

import (
	"fmt"

	oerrors "github.com/routegen/cli/internal/errors"
)

// Kind is a page template variant.
type Kind string

const (
	// WithLoader fetches data in a loader resolved before render.
	WithLoader Kind = "withLoader"

	// DeferredLoader defers the fetch and renders through Suspense/Await.
	DeferredLoader Kind = "deferredLoader"

	// WithParams reads the "id" route parameter.
	WithParams Kind = "withParams"

	// AuthenticatedRoute gates its children behind an auth check.
	AuthenticatedRoute Kind = "authenticatedRoute"

	// LazyLoaded wraps a lazily imported component in Suspense.
	LazyLoaded Kind = "lazyLoaded"

	// NotFound is a static 404 page.
	NotFound Kind = "notFound"

	// Layout is a static header/main/footer shell.
	Layout Kind = "layout"
)

// DefaultKind is the kind used when none is chosen.
const DefaultKind = WithLoader

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	_, ok := registry[k]
	return ok
}

// UsesAPIPath reports whether the kind embeds the API path.
func (k Kind) UsesAPIPath() bool {
	return k == WithLoader || k == DeferredLoader
}

// Extension is the file extension of a generated page.
type Extension string

const (
	// TSX is used when the project prefers TypeScript JSX.
	TSX Extension = "tsx"

	// JSX is used otherwise.
	JSX Extension = "jsx"
)

// ExtensionFor returns TSX when prefersTSX is set and JSX otherwise.
func ExtensionFor(prefersTSX bool) Extension {
	if prefersTSX {
		return TSX
	}
	return JSX
}

// PageData is passed to page templates.
type PageData struct {
	// Name is the capitalized component identifier.
	Name string

	// APIPath is the sanitized API path, without a leading slash.
	APIPath string
}

// PageSpec is a fully resolved generation request.
type PageSpec struct {
	// Name is the page name as entered.
	Name string

	// CapitalizedName is Name with its first character uppercased.
	CapitalizedName string

	// RouteFolder is the folder under the source root that receives the page.
	RouteFolder string

	Kind Kind

	// APIPath has a single leading slash stripped.
	APIPath string

	Extension Extension
}

// NewPageSpec sanitizes raw answers into a PageSpec. Empty names are rejected.
func NewPageSpec(name, routeFolder string, kind Kind, apiPath string, ext Extension) (PageSpec, error) {
	if err := ValidatePageName(name); err != nil {
		return PageSpec{}, oerrors.NewValidationError(err.Error(), "")
	}
	if err := ValidateFolderName(routeFolder); err != nil {
		return PageSpec{}, oerrors.NewValidationError(err.Error(), "")
	}

	return PageSpec{
		Name:            name,
		CapitalizedName: Capitalize(name),
		RouteFolder:     routeFolder,
		Kind:            kind,
		APIPath:         SanitizeAPIPath(apiPath),
		Extension:       ext,
	}, nil
}

// FileName returns the generated file name, e.g. "Dashboard.tsx".
func (s PageSpec) FileName() string {
	return fmt.Sprintf("%s.%s", s.CapitalizedName, s.Extension)
}

// Render renders the page source for this spec.
func (s PageSpec) Render() string {
	return Render(s.CapitalizedName, s.Kind, s.APIPath)
}
