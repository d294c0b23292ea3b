package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/inspect"
	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/templates"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd(g *GlobalConfig) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show what detection finds in the project",
		Long: `Show what detection finds in the project without asking anything.

Reports:
  - whether package.json exists
  - source directory candidates
  - TypeScript usage and the preferred extension
  - whether react-router-dom is a dependency
  - the package manager and what pointed to it

Examples:
  route-generator inspect
  route-generator inspect -o json
  route-generator inspect templates`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runInspect(cmd.OutOrStdout(), g, format))
		},
	}

	cmd.PersistentFlags().StringVarP(&format, "output", "o", "table", "Output format: "+strings.Join(output.ValidFormats(), ", "))
	cmd.AddCommand(newInspectTemplatesCmd(&format))

	return cmd
}

func newInspectTemplatesCmd(format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List page templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runInspectTemplates(cmd.OutOrStdout(), *format))
		},
	}
}

func parseFormat(s string) (output.OutputFormat, error) {
	f := output.ParseOutputFormat(s)
	if !f.IsValid() {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", s),
			"Use one of: "+strings.Join(output.ValidFormats(), ", "),
		)
	}
	return f, nil
}

func runInspect(w io.Writer, g *GlobalConfig, format string) error {
	f, err := parseFormat(format)
	if err != nil {
		return err
	}

	facts := inspect.Collect(g.ProjectDir)
	output.Debug("collected facts", "root", facts.Root, "candidates", len(facts.SourceCandidates))

	if f != output.FormatTable {
		return output.WriteStructured(w, f, facts)
	}

	candidates := "none"
	if len(facts.SourceCandidates) > 0 {
		candidates = strings.Join(facts.SourceCandidates, ", ")
	}
	tbl := output.NewTable("FACT", "VALUE", "SOURCE").
		Row("root", facts.Root, "").
		Row("package.json", strconv.FormatBool(facts.ManifestFound), "").
		Row("source candidates", candidates, "").
		Row("typescript", strconv.FormatBool(facts.TypeScript.UsesTypeScript), facts.TypeScript.Source).
		Row("extension", string(facts.TypeScript.Extension()), facts.TypeScript.Source).
		Row(inspect.RoutingDependency, strconv.FormatBool(facts.RoutingDependency), "").
		Row("package manager", facts.PackageManager.Name.String(), facts.PackageManager.Source)

	_, err = fmt.Fprintln(w, tbl.String())
	return err
}

func runInspectTemplates(w io.Writer, format string) error {
	f, err := parseFormat(format)
	if err != nil {
		return err
	}

	list := templates.List()
	if f != output.FormatTable {
		return output.WriteStructured(w, f, list)
	}

	tbl := output.NewTable("TEMPLATE", "DESCRIPTION")
	for _, t := range list {
		name := t.Kind.String()
		if t.Kind == templates.DefaultKind {
			name += " (default)"
		}
		tbl.Row(name, t.Description)
	}
	_, err = fmt.Fprintln(w, tbl.String())
	return err
}
