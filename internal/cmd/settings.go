package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routegen/cli/internal/config"
	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/pkgmanager"
	"github.com/routegen/cli/internal/templates"
)

// projectFlags are the per-command flags that override configured project values.
type projectFlags struct {
	sourceDir      string
	extension      string
	packageManager string
	folder         string
	template       string
	apiPath        string
}

// addTo registers the detection overrides shared by init and generate.
func (f *projectFlags) addTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sourceDir, "source-dir", "", "Source directory relative to the project root (env: ROUTEGEN_PROJECT_SOURCEDIR)")
	cmd.Flags().StringVar(&f.extension, "ext", "", "Component file extension: tsx or jsx (env: ROUTEGEN_PROJECT_EXTENSION)")
}

// projectSettings are resolved and checked project values. Empty means "detect".
type projectSettings struct {
	sourceDir      string
	extension      templates.Extension
	packageManager pkgmanager.Name
	template       templates.Kind
	folder         string
	apiPath        string
}

// resolveProject resolves flags over env, config and defaults, and rejects
// values no question would have accepted.
func resolveProject(g *GlobalConfig, f projectFlags) (*projectSettings, error) {
	r := config.ResolveAll(config.ResolveOptions{
		SourceDirFlag:      f.sourceDir,
		ExtensionFlag:      f.extension,
		PackageManagerFlag: f.packageManager,
		FolderFlag:         f.folder,
		TemplateFlag:       f.template,
		APIPathFlag:        f.apiPath,
		Config:             g.Config,
	})
	config.LogResolvedValues(r.Values())

	s := &projectSettings{
		sourceDir: r.SourceDir.Value,
		folder:    r.RoutesFolder.Value,
		apiPath:   r.APIPath.Value,
	}

	if s.sourceDir != "" {
		if err := templates.ValidateDirectoryName(s.sourceDir); err != nil {
			return nil, invalidSetting(r.SourceDir, err.Error())
		}
	}

	switch ext := templates.Extension(strings.ToLower(r.Extension.Value)); ext {
	case "":
	case templates.TSX, templates.JSX:
		s.extension = ext
	default:
		return nil, invalidSetting(r.Extension, "must be tsx or jsx")
	}

	if pm := r.PackageManager.Value; pm != "" {
		s.packageManager = pkgmanager.Name(pm)
		if !s.packageManager.IsValid() {
			return nil, invalidSetting(r.PackageManager, "must be one of npm, yarn, pnpm, bun")
		}
	}

	kind, err := templates.ParseKind(r.Template.Value)
	if err != nil {
		return nil, invalidSetting(r.Template, err.Error())
	}
	s.template = kind

	return s, nil
}

func invalidSetting(v config.ResolvedValue, reason string) error {
	return oerrors.NewValidationError(
		fmt.Sprintf("invalid %s %q from %s: %s", v.Key, v.Value, v.Source, reason),
		"Fix the flag, the ROUTEGEN_* variable or the config file it came from.",
	)
}
