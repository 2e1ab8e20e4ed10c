// Package config provides configuration management for riderctl using Viper.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/paths"
)

// EnvPrefix prefixes every environment override (RIDERCTL_SEARCH_TIMEOUT...).
const EnvPrefix = "RIDERCTL"

// envConfigDir overrides the directory searched for config.yaml.
const envConfigDir = EnvPrefix + "_CONFIG_DIR"

// DefaultSearchTimeout bounds a single run of mdfind or locate.
const DefaultSearchTimeout = 10 * time.Second

// Strategy names accepted by search.disabled.
const (
	StrategyToolbox   = "toolbox"
	StrategyWellKnown = "well-known"
	StrategySearch    = "search"
	StrategyRegistry  = "registry"
	StrategyOverride  = "override"
)

// Strategies lists every discovery strategy name in collection order.
var Strategies = []string{
	StrategyToolbox,
	StrategyWellKnown,
	StrategySearch,
	StrategyRegistry,
	StrategyOverride,
}

// DefaultExcludes are substrings that drop search utility hits: Toolbox's
// private copies and anything in a trash folder.
var DefaultExcludes = []string{
	"/JetBrains/Toolbox/apps/",
	"/.Trash/",
	"/.local/share/Trash/",
}

// Config represents the top-level configuration structure.
type Config struct {
	Version      int           `mapstructure:"version" yaml:"version" json:"version" toml:"version"`
	Search       SearchConfig  `mapstructure:"search" yaml:"search" json:"search" toml:"search"`
	Toolbox      ToolboxConfig `mapstructure:"toolbox" yaml:"toolbox" json:"toolbox" toml:"toolbox"`
	CustomPaths  []string      `mapstructure:"custom_paths" yaml:"custom_paths" json:"custom_paths" toml:"custom_paths"`
	ResourcesDir string        `mapstructure:"resources_dir" yaml:"resources_dir,omitempty" json:"resources_dir,omitempty" toml:"resources_dir,omitempty"`
	EngineRoot   string        `mapstructure:"engine_root" yaml:"engine_root,omitempty" json:"engine_root,omitempty" toml:"engine_root,omitempty"`
}

// SearchConfig controls the discovery strategies.
type SearchConfig struct {
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout" toml:"timeout"`
	Disabled []string      `mapstructure:"disabled" yaml:"disabled" json:"disabled" toml:"disabled"`
	Exclude  []string      `mapstructure:"exclude" yaml:"exclude" json:"exclude" toml:"exclude"`
}

// ToolboxConfig overrides Toolbox discovery.
type ToolboxConfig struct {
	// Location replaces the default Toolbox data directory.
	Location string `mapstructure:"location" yaml:"location,omitempty" json:"location,omitempty" toml:"location,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: 1,
		Search: SearchConfig{
			Timeout: DefaultSearchTimeout,
			Exclude: append([]string(nil), DefaultExcludes...),
		},
	}
}

// Disabled reports whether the named strategy is switched off.
func (c *Config) Disabled(strategy string) bool {
	for _, name := range c.Search.Disabled {
		if name == strategy {
			return true
		}
	}
	return false
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if dir := os.Getenv(envConfigDir); dir != "" {
		viper.AddConfigPath(dir)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(paths.ConfigHome(), paths.AppName))
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	d := Default()
	viper.SetDefault("version", d.Version)
	viper.SetDefault("search.timeout", d.Search.Timeout)
	viper.SetDefault("search.disabled", []string{})
	viper.SetDefault("search.exclude", d.Search.Exclude)
	viper.SetDefault("toolbox.location", "")
	viper.SetDefault("custom_paths", []string{})
	viper.SetDefault("resources_dir", "")
	viper.SetDefault("engine_root", "")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
		case errors.As(err, &notFound), errors.Is(err, os.ErrNotExist):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// FileUsed returns the config file Viper read, or "" when running on
// defaults.
func FileUsed() string {
	return viper.ConfigFileUsed()
}
