package cmd

import (
	"github.com/spf13/cobra"

	"github.com/routegen/cli/internal/output"
	"github.com/routegen/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show route-generator version information.

Displays:
  - CLI version, commit, and build date
  - Go version
  - CUE SDK version (used for config validation)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Println(version.Get().String())
			return nil
		},
	}
}
