package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/routegen/cli/internal/generate"
	"github.com/routegen/cli/internal/inspect"
	"github.com/routegen/cli/internal/output"
)

type generateOptions struct {
	project projectFlags

	name         string
	routerFile   string
	force        bool
	yes          bool
	diff         bool
	experimental bool
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(g *GlobalConfig) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen", "g"},
		Short:   "Generate a page component",
		Long: `Generate a page component in a pages/routes folder.

The command asks for the folder, the page name, the API path and the page
template, then writes <source>/<folder>/<Name>.<tsx|jsx>. An existing file is
only replaced after confirmation.

Every question can be answered with a flag. Without a terminal, or with --yes,
unanswered questions take their defaults.

Examples:
  # Interactive
  route-generator generate

  # Non-interactive
  route-generator generate --name dashboard --template deferredLoader --api-path /api/dashboard --yes

  # Replace an existing page, previewing the change
  route-generator generate --name dashboard --diff`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runGenerate(cmd, g, opts))
		},
	}

	cmd.Flags().StringVar(&opts.project.folder, "folder", "", "Pages/routes folder under the source directory")
	cmd.Flags().StringVar(&opts.name, "name", "", "Page name")
	cmd.Flags().StringVar(&opts.project.apiPath, "api-path", "", "API path used by loader templates")
	cmd.Flags().StringVarP(&opts.project.template, "template", "t", "", "Page template (see 'route-generator inspect templates')")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing page without asking")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults for unanswered questions")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show a diff before asking to overwrite")
	cmd.Flags().BoolVarP(&opts.experimental, "experimental", "e", false, "List the routes of the router file after writing")
	cmd.Flags().StringVar(&opts.routerFile, "router-file", "", "Router file inspected with --experimental")
	opts.project.addTo(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, g *GlobalConfig, opts *generateOptions) error {
	settings, err := resolveProject(g, opts.project)
	if err != nil {
		return err
	}

	// Configured defaults are offered; only flags answer questions.
	presets := map[string]string{
		generate.KeyFolder:     opts.project.folder,
		generate.KeyName:       opts.name,
		generate.KeyAPIPath:    opts.project.apiPath,
		generate.KeyTemplate:   opts.project.template,
		generate.KeyRouterFile: opts.routerFile,
	}
	if opts.force {
		presets[generate.KeyOverwrite] = strconv.FormatBool(true)
	}
	p := newPrompter(opts.yes, presets)

	insp := inspect.New(g.ProjectDir, p)
	insp.SourceDir = settings.sourceDir
	insp.Extension = settings.extension

	orch := generate.New(generate.Options{
		Root:            g.ProjectDir,
		SourceDir:       settings.sourceDir,
		DefaultFolder:   settings.folder,
		DefaultTemplate: settings.template,
		DefaultAPIPath:  settings.apiPath,
		ShowDiff:        opts.diff,
		Experimental:    opts.experimental,
	}, p, insp)

	res, err := orch.Run(cmd.Context())
	if err != nil {
		return err
	}

	output.Debug("generate finished",
		"file", res.Write.Path,
		"outcome", res.Write.Outcome,
		"states", len(orch.Trace),
	)
	return nil
}
