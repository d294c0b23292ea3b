// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// ProjectConfig pre-answers project detection questions.
type ProjectConfig struct {
	// SourceDir is the source root relative to the project root.
	// Env: ROUTEGEN_PROJECT_SOURCEDIR
	SourceDir string `mapstructure:"sourceDir" json:"sourceDir,omitempty" yaml:"sourceDir,omitempty"`

	// Extension is "tsx" or "jsx".
	// Env: ROUTEGEN_PROJECT_EXTENSION
	Extension string `mapstructure:"extension" json:"extension,omitempty" yaml:"extension,omitempty"`

	// PackageManager overrides package manager detection.
	// Env: ROUTEGEN_PROJECT_PACKAGEMANAGER
	PackageManager string `mapstructure:"packageManager" json:"packageManager,omitempty" yaml:"packageManager,omitempty"`
}

// GenerateConfig holds the defaults offered by generate.
type GenerateConfig struct {
	// RoutesFolder is the default folder name. Default: "routes"
	RoutesFolder string `mapstructure:"routesFolder" json:"routesFolder,omitempty" yaml:"routesFolder,omitempty"`

	// Template is the default page kind. Default: "withLoader"
	Template string `mapstructure:"template" json:"template,omitempty" yaml:"template,omitempty"`

	// APIPath is the default API path. Default: "/"
	APIPath string `mapstructure:"apiPath" json:"apiPath,omitempty" yaml:"apiPath,omitempty"`
}

// Config represents the route-generator configuration.
// Loaded from ~/.routegen/config.yaml, validated against the embedded CUE schema.
type Config struct {
	Log      LogConfig      `mapstructure:"log" json:"log,omitempty" yaml:"log,omitempty"`
	Project  ProjectConfig  `mapstructure:"project" json:"project,omitempty" yaml:"project,omitempty"`
	Generate GenerateConfig `mapstructure:"generate" json:"generate,omitempty" yaml:"generate,omitempty"`
}

// Defaults for generate.
const (
	DefaultRoutesFolder = "routes"
	DefaultTemplate     = "withLoader"
	DefaultAPIPath      = "/"
)

// DefaultConfig returns a Config with all default values populated.
// Used by `route-generator config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Timestamps: boolPtr(true)},
		Generate: GenerateConfig{
			RoutesFolder: DefaultRoutesFolder,
			Template:     DefaultTemplate,
			APIPath:      DefaultAPIPath,
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
