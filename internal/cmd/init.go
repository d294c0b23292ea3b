package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/routegen/cli/internal/inspect"
	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/setup"
)

type initOptions struct {
	project projectFlags
	yes     bool
}

// NewInitCmd creates the init command.
func NewInitCmd(g *GlobalConfig) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Prepare a React project for page generation",
		Long: `Prepare a React project for page generation.

Checks performed:
  1. package.json exists in the project root
  2. react-router-dom is a dependency (offers to install it otherwise)
  3. a pages/routes folder exists (offers to create one otherwise)

The package manager is taken from the packageManager field of package.json,
then from lockfiles, and defaults to npm.

Examples:
  # Interactive
  route-generator init

  # Non-interactive: install the router if needed and create src/routes
  route-generator init --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runInit(cmd, g, opts))
		},
	}

	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Answer yes to the opening question and accept defaults")
	cmd.Flags().StringVar(&opts.project.packageManager, "package-manager", "", "Package manager: npm, yarn, pnpm or bun (env: ROUTEGEN_PROJECT_PACKAGEMANAGER)")
	opts.project.addTo(cmd)

	return cmd
}

func runInit(cmd *cobra.Command, g *GlobalConfig, opts *initOptions) error {
	settings, err := resolveProject(g, opts.project)
	if err != nil {
		return err
	}

	presets := map[string]string{}
	if opts.yes {
		presets[setup.KeyGenerateRoutes] = strconv.FormatBool(true)
	}
	p := newPrompter(opts.yes, presets)

	insp := inspect.New(g.ProjectDir, p)
	insp.SourceDir = settings.sourceDir
	insp.Extension = settings.extension

	res, err := setup.Run(cmd.Context(), setup.Options{
		Root:           g.ProjectDir,
		PackageManager: settings.packageManager,
	}, p, insp)
	if err != nil {
		return err
	}

	output.Debug("init finished",
		"packageManager", res.PackageManager.Name,
		"installed", res.Installed,
		"createdFolder", res.CreatedFolder,
	)
	return nil
}
