// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/routegen/cli/internal/config"
	"github.com/routegen/cli/internal/output"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE and shared
// by every sub-command.
type GlobalConfig struct {
	// Config is the loaded configuration. It is never nil after initialization.
	Config *config.Config

	// ConfigPath is the resolved --config path and its source.
	ConfigPath config.ResolvedValue

	// ConfigFlag is the raw --config flag value.
	ConfigFlag string

	// ProjectDir is the project root commands operate on.
	ProjectDir string

	Verbose    bool
	Timestamps bool
}

// NewRootCmd creates the root command for the route-generator CLI.
func NewRootCmd() *cobra.Command {
	g := &GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "route-generator",
		Short: "Scaffold React Router pages",
		Long: `route-generator prepares a React project for routing and scaffolds page
components from built-in templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd, g)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigFlag, "config", "", "Path to config file (env: ROUTEGEN_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&g.ProjectDir, "dir", "C", "", "Project root (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&g.Timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewInitCmd(g))
	rootCmd.AddCommand(NewGenerateCmd(g))
	rootCmd.AddCommand(NewInspectCmd(g))
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd(g))

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, g *GlobalConfig) error {
	if g.ProjectDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		g.ProjectDir = wd
	}

	loaded, err := config.Load(config.LoaderOptions{
		ConfigFlag: g.ConfigFlag,
		ProjectDir: g.ProjectDir,
	})
	if err != nil {
		// Commands that don't need config (version, config vet) must still work.
		output.Debug("config load error", "error", err)
	}

	g.Config = config.DefaultConfig()
	if loaded != nil {
		g.Config = loaded.Config
		g.ConfigPath = loaded.ConfigPath
	} else if path, pathErr := config.ResolveConfigPath(g.ConfigFlag); pathErr == nil {
		g.ConfigPath = path
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: g.Verbose}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(g.Timestamps)
	} else if g.Config.Log.Timestamps != nil {
		logCfg.Timestamps = g.Config.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if err != nil {
		output.Warn("ignoring configuration file", "path", g.ConfigPath.Value, "error", err)
	}

	output.Debug("initializing CLI",
		"project", g.ProjectDir,
		"config", g.ConfigPath.Value,
		"configSource", g.ConfigPath.Source,
	)

	return nil
}
