package config

import (
	"os"
	"strings"

	"github.com/routegen/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value and its provenance.
type ResolvedValue struct {
	Key    string
	Value  string
	Source ConfigSource

	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// envVar returns the environment variable for a config key.
func envVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// resolve picks the value for key using precedence: flag > env > config > default.
// Empty strings count as unset.
func resolve(key, flagValue, configValue, defaultValue string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}
	envValue := os.Getenv(envVar(key))

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if rv.Source == "" {
			rv.Value, rv.Source = c.value, c.source
			continue
		}
		// The loader merges env into the config struct; skip the echo.
		if c.source == SourceConfig && c.value == envValue {
			continue
		}
		rv.Shadowed[c.source] = c.value
	}

	return rv
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) ROUTEGEN_CONFIG env, (3) ~/.routegen/config.yaml default
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolve("config", flagValue, "", paths.ConfigFile), nil
}

// ResolveOptions contains flag values for resolution. Empty means unset.
type ResolveOptions struct {
	SourceDirFlag      string
	ExtensionFlag      string
	PackageManagerFlag string
	FolderFlag         string
	TemplateFlag       string
	APIPathFlag        string

	Config *Config
}

// Resolved holds every resolved project and generate value.
type Resolved struct {
	SourceDir      ResolvedValue
	Extension      ResolvedValue
	PackageManager ResolvedValue
	RoutesFolder   ResolvedValue
	Template       ResolvedValue
	APIPath        ResolvedValue
}

// Values returns the resolved values in a fixed order.
func (r *Resolved) Values() []ResolvedValue {
	return []ResolvedValue{r.SourceDir, r.Extension, r.PackageManager, r.RoutesFolder, r.Template, r.APIPath}
}

// ResolveAll resolves project and generate settings from flags, env, config and defaults.
// SourceDir, Extension and PackageManager have no defaults; empty means "detect".
func ResolveAll(opts ResolveOptions) *Resolved {
	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &Resolved{
		SourceDir:      resolve("project.sourceDir", opts.SourceDirFlag, cfg.Project.SourceDir, ""),
		Extension:      resolve("project.extension", opts.ExtensionFlag, cfg.Project.Extension, ""),
		PackageManager: resolve("project.packageManager", opts.PackageManagerFlag, cfg.Project.PackageManager, ""),
		RoutesFolder:   resolve("generate.routesFolder", opts.FolderFlag, cfg.Generate.RoutesFolder, DefaultRoutesFolder),
		Template:       resolve("generate.template", opts.TemplateFlag, cfg.Generate.Template, DefaultTemplate),
		APIPath:        resolve("generate.apiPath", opts.APIPathFlag, cfg.Generate.APIPath, DefaultAPIPath),
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		if v.Source == "" {
			continue
		}
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
