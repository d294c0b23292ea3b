package templates

import (
	"bytes"
	"embed"
	"strings"
	"text/template"
)

//go:embed pages/*.tmpl
var pagesFS embed.FS

// fallbackTemplate renders kinds outside the registry.
const fallbackTemplate = "fallback.tmpl"

var pages = template.Must(template.ParseFS(pagesFS, "pages/*.tmpl"))

// Render returns the page source for a component name, kind and API path.
// It is pure and total: an unknown kind renders the fallback page titled for name.
// The result has no leading whitespace and ends with a single newline.
func Render(name string, kind Kind, apiPath string) string {
	data := PageData{Name: name, APIPath: apiPath}

	tmplName := fallbackTemplate
	if kind.IsValid() {
		tmplName = string(kind) + ".tmpl"
	}

	out, err := execute(tmplName, data)
	if err != nil {
		out = "const " + name + " = () => null\n\nexport default " + name
	}

	return strings.TrimSpace(out) + "\n"
}

func execute(tmplName string, data PageData) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, tmplName, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
