package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader creates a configuration loader that searches rootDir for
// typesplit.yml.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// NewFileLoader creates a loader bound to an explicit config file path.
func NewFileLoader(configFile string) Loader {
	return &loader{configFile: configFile}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (TYPESPLIT_*)
// 2. Config file (typesplit.yml or typesplit.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName("typesplit")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	// Enable environment variable overrides (e.g. TYPESPLIT_OUTPUT_DIR)
	v.SetEnvPrefix("TYPESPLIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("source.path")
	v.BindEnv("output.dir")
	v.BindEnv("output.preamble")
	v.BindEnv("output.fallback")
	v.BindEnv("scan.lookahead")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is acceptable when searching by name: we run
		// on defaults plus env vars. An explicit --config path must exist.
		if _, notFound := err.(viper.ConfigFileNotFoundError); l.configFile != "" || !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// The category table is all-or-nothing: a config file that defines
	// categories replaces the built-in taxonomy wholesale. Seeding it as a
	// viper default would deep-merge the two instead.
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("source.path", defaults.Source.Path)
	v.SetDefault("output.dir", defaults.Output.Dir)
	v.SetDefault("output.preamble", defaults.Output.Preamble)
	v.SetDefault("output.fallback", defaults.Output.Fallback)
	v.SetDefault("scan.lookahead", defaults.Scan.Lookahead)
}

// LoadConfig is a convenience function that creates a loader and loads
// config from the current working directory.
func LoadConfig() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return NewLoader(wd).Load()
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
