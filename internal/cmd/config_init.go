package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/routegen/cli/internal/config"
	oerrors "github.com/routegen/cli/internal/errors"
	"github.com/routegen/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(g *GlobalConfig) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the route-generator configuration.

Creates ~/.routegen/config.yaml (or the --config path) with the default
values for logging and page generation.

Examples:
  # Initialize configuration
  route-generator config init

  # Overwrite existing configuration
  route-generator config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exitError(runConfigInit(g, force))
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing configuration")

	return cmd
}

func runConfigInit(g *GlobalConfig, force bool) error {
	path, err := configPath(g)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	cfg := config.DefaultConfig()
	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}
	if err := validator.Validate(cfg); err != nil {
		return fmt.Errorf("default configuration does not match the schema: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return oerrors.NewIOError(dir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return oerrors.NewIOError(path, err)
	}

	output.Success("Configuration initialized at " + output.StyleNoun.Render(path))
	output.Println("Validate with: route-generator config vet")
	return nil
}

// configPath returns the expanded config path resolved during initialization.
func configPath(g *GlobalConfig) (string, error) {
	path := g.ConfigPath.Value
	if path == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return "", oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
		path = paths.ConfigFile
	}
	return config.ExpandPath(path)
}
