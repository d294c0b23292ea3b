package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/routegen/cli/internal/config"
	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the route-generator configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Values satisfy the configuration schema

The config path is resolved using precedence:
  --config flag > ROUTEGEN_CONFIG env > ~/.routegen/config.yaml

Examples:
  # Validate default configuration
  route-generator config vet

  # Validate custom config path
  route-generator config vet --config /path/to/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigVet(g))
		},
	}
}

func runConfigVet(g *GlobalConfig) error {
	path, err := configPath(g)
	if err != nil {
		return err
	}

	output.Debug("validating config", "path", path, "source", g.ConfigPath.Source)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return oerrors.NewNotFoundError(
			"configuration file not found",
			path,
			"Run 'route-generator config init' to create default configuration",
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateFile(path); err != nil {
		return err
	}

	output.Println("Configuration is valid: " + path)
	return nil
}
