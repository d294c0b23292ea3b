package routes

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

var (
	typeScriptLanguage = sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	tsxLanguage        = sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
)

// newParser returns a parser for the file. Plain .ts files use the TypeScript
// grammar; everything else may contain JSX and uses the TSX grammar.
func newParser(path string) (*sitter.Parser, error) {
	language := tsxLanguage
	if strings.HasSuffix(strings.ToLower(path), ".ts") {
		language = typeScriptLanguage
	}

	parser := sitter.NewParser()
	if err := parser.SetLanguage(language); err != nil {
		parser.Close()
		return nil, err
	}
	return parser, nil
}

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return node.Utf8Text(source)
}

// unquote strips matching single, double or backtick quotes.
func unquote(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if first == last && (first == '\'' || first == '"' || first == '`') {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}

func walkTreePreOrder(root *sitter.Node, visit func(*sitter.Node)) {
	if root == nil || visit == nil {
		return
	}

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(node)

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			child := node.Child(uint(i))
			if child != nil {
				stack = append(stack, child)
			}
		}
	}
}
