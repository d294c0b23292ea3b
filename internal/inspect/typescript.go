package inspect

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/routegen/cli/internal/manifest"
	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/prompt"
	"github.com/routegen/cli/internal/templates"
)

// TSConfigFile is the TypeScript configuration looked up at the project root.
const TSConfigFile = "tsconfig.json"

// TypeScriptPreference is whether the project uses TypeScript and which
// extension generated pages should get.
type TypeScriptPreference struct {
	UsesTypeScript bool `json:"usesTypeScript"`
	PrefersTSX     bool `json:"prefersTsx"`

	// Source names the signal: "tsconfig", "devDependencies" or "none".
	Source string `json:"source"`
}

// Extension returns the file extension implied by the preference.
func (p TypeScriptPreference) Extension() templates.Extension {
	return templates.ExtensionFor(p.UsesTypeScript && p.PrefersTSX)
}

// InferTypeScript derives the preference without asking. A tsconfig.json wins and
// its compilerOptions.jsx decides TSX; otherwise a typescript devDependency means
// TypeScript with TSX preferred.
func InferTypeScript(root string, m *manifest.Manifest) TypeScriptPreference {
	path := filepath.Join(root, TSConfigFile)
	if data, err := os.ReadFile(path); err == nil {
		output.Debug("TypeScript project detected", "file", path)
		return TypeScriptPreference{
			UsesTypeScript: true,
			PrefersTSX:     hasJSXOption(data),
			Source:         "tsconfig",
		}
	}

	if m.HasDevDependency("typescript") {
		output.Debug("TypeScript dependency found in manifest")
		return TypeScriptPreference{UsesTypeScript: true, PrefersTSX: true, Source: "devDependencies"}
	}

	return TypeScriptPreference{Source: "none"}
}

// hasJSXOption reports whether a tsconfig sets compilerOptions.jsx. The file may
// contain comments and trailing commas; a file that still does not parse has no
// jsx option.
func hasJSXOption(data []byte) bool {
	std, err := hujson.Standardize(data)
	if err != nil {
		output.Debug("tsconfig not parseable", "error", err)
		return false
	}

	var cfg struct {
		CompilerOptions map[string]json.RawMessage `json:"compilerOptions"`
	}
	if err := json.Unmarshal(std, &cfg); err != nil {
		output.Debug("tsconfig not parseable", "error", err)
		return false
	}

	_, ok := cfg.CompilerOptions["jsx"]
	return ok
}

// DetectTypeScriptPreferences infers the preference and, for TypeScript projects,
// asks which extension to use. The answer overrides the inferred TSX preference.
// Non-TypeScript projects get JSX without a question.
func (i *Inspector) DetectTypeScriptPreferences(ctx context.Context) (TypeScriptPreference, error) {
	if i.Extension != "" {
		return TypeScriptPreference{
			UsesTypeScript: i.Extension == templates.TSX,
			PrefersTSX:     i.Extension == templates.TSX,
			Source:         "override",
		}, nil
	}

	pref := InferTypeScript(i.Root, i.Manifest())
	if !pref.UsesTypeScript {
		return pref, nil
	}

	def := templates.JSX
	if pref.PrefersTSX {
		def = templates.TSX
	}

	choice, err := i.Prompter.Select(ctx, prompt.Select{
		Key:     KeyExtension,
		Message: "Choose the preferred file extension for components:",
		Options: []prompt.Option{
			{Label: "TypeScript (TSX)", Value: string(templates.TSX)},
			{Label: "JavaScript (JSX)", Value: string(templates.JSX)},
		},
		Default: string(def),
	})
	if err != nil {
		return TypeScriptPreference{}, err
	}

	pref.PrefersTSX = choice == string(templates.TSX)
	return pref, nil
}
