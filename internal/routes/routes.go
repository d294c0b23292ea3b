// Package routes finds route declarations in a router source file.
//
// It recognizes JSX <Route path=... element=...> elements and route objects
// of the form { path: ..., element: ... } as passed to createBrowserRouter.
// Files are only read; nothing is rewritten.
package routes

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/output"
)

// DefaultRouterFile is offered when asking for the router location.
const DefaultRouterFile = "src/main.tsx"

// Form is how a route is declared.
type Form string

const (
	FormJSX    Form = "jsx"
	FormObject Form = "object"
)

// Route is one route declaration.
type Route struct {
	Path    string `json:"path"`
	Element string `json:"element,omitempty"`
	Form    Form   `json:"form"`

	// Line is 1-based.
	Line int `json:"line"`
}

// InspectFile reads and parses the router file at path.
func InspectFile(path string) ([]Route, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("router file %s does not exist", path), path, "")
		}
		return nil, oerrors.NewIOError(path, err)
	}
	return Parse(path, src)
}

// Parse returns routes declared in src, in source order. path selects the grammar.
func Parse(path string, src []byte) ([]Route, error) {
	parser, err := newParser(path)
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}
	defer parser.Close()

	tree := parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parsing %s failed", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		output.Debug("router file has syntax errors; results may be partial", "path", path)
	}

	var found []Route
	walkTreePreOrder(root, func(node *sitter.Node) {
		var (
			r  Route
			ok bool
		)
		switch node.Kind() {
		case "jsx_self_closing_element":
			r, ok = jsxRoute(node, src)
		case "jsx_element":
			r, ok = jsxRoute(node.ChildByFieldName("open_tag"), src)
		case "object":
			r, ok = objectRoute(node, src)
		}
		if ok {
			r.Line = int(node.StartPosition().Row) + 1
			found = append(found, r)
		}
	})

	return found, nil
}

// jsxRoute reads path and element attributes from a <Route> opening or
// self-closing element.
func jsxRoute(node *sitter.Node, src []byte) (Route, bool) {
	if node == nil || nodeText(node.ChildByFieldName("name"), src) != "Route" {
		return Route{}, false
	}

	r := Route{Form: FormJSX}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		attr := node.NamedChild(i)
		if attr == nil || attr.Kind() != "jsx_attribute" || attr.NamedChildCount() < 2 {
			continue
		}
		name := nodeText(attr.NamedChild(0), src)
		value := attr.NamedChild(attr.NamedChildCount() - 1)
		switch name {
		case "path":
			r.Path = attributeValue(value, src)
		case "element", "Component":
			r.Element = attributeValue(value, src)
		}
	}

	return r, r.Path != ""
}

func attributeValue(node *sitter.Node, src []byte) string {
	if node.Kind() == "jsx_expression" && node.NamedChildCount() > 0 {
		return unquote(nodeText(node.NamedChild(0), src))
	}
	return unquote(nodeText(node, src))
}

// objectRoute reads a { path, element } object literal.
func objectRoute(node *sitter.Node, src []byte) (Route, bool) {
	r := Route{Form: FormObject}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		pair := node.NamedChild(i)
		if pair == nil || pair.Kind() != "pair" {
			continue
		}
		key := unquote(nodeText(pair.ChildByFieldName("key"), src))
		value := pair.ChildByFieldName("value")
		switch key {
		case "path":
			if value == nil || (value.Kind() != "string" && value.Kind() != "template_string") {
				return Route{}, false
			}
			r.Path = unquote(nodeText(value, src))
		case "element", "Component":
			r.Element = nodeText(value, src)
		}
	}

	return r, r.Path != ""
}
