package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/routegen/cli/internal/output"
)

// Environment variable prefix for route-generator configuration.
const envPrefix = "ROUTEGEN"

// EnvFile is the project-local environment file loaded before env binding.
const EnvFile = ".env"

// keys lists every configuration key bound to the environment.
var keys = []string{
	"log.timestamps",
	"project.sourceDir",
	"project.extension",
	"project.packageManager",
	"generate.routesFolder",
	"generate.template",
	"generate.apiPath",
}

// Loader handles loading and merging configuration from the file and the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// A missing config file is fine; defaults and env vars still apply.
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadEnvFile loads KEY=value pairs from <dir>/.env into the process environment.
// Variables that are already set keep their value. A missing file is not an error.
func LoadEnvFile(dir string) (string, error) {
	path := filepath.Join(dir, EnvFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("loading %s: %w", path, err)
	}
	output.Debug("loaded env file", "path", path)
	return path, nil
}

// LoaderOptions configures Load.
type LoaderOptions struct {
	// ConfigFlag is the --config flag value.
	ConfigFlag string

	// ProjectDir is where the .env file is looked up.
	ProjectDir string
}

// Loaded is the configuration with where it came from.
type Loaded struct {
	Config     *Config
	ConfigPath ResolvedValue
	EnvFile    string
}

// Load loads the project .env file, resolves the config path and reads the
// configuration. The file is validated against the schema when it exists.
func Load(opts LoaderOptions) (*Loaded, error) {
	envFile, err := LoadEnvFile(opts.ProjectDir)
	if err != nil {
		return nil, err
	}

	path, err := ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, err
	}

	expanded, err := ExpandPath(path.Value)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}
	if _, statErr := os.Stat(expanded); statErr == nil {
		validator, err := NewValidator()
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateFile(expanded); err != nil {
			return nil, err
		}
	}

	cfg, err := NewLoader().Load(expanded)
	if err != nil {
		return nil, err
	}

	return &Loaded{Config: cfg, ConfigPath: path, EnvFile: envFile}, nil
}
