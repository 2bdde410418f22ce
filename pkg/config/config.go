// Package config loads tool configuration for docrules.
//
// Configuration is layered, later layers overriding earlier ones:
// built-in defaults, the per-repository .docrules.toml, then DOCRULES_*
// environment variables.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/docrules/pkg/errors"
	"github.com/arthur-debert/docrules/pkg/logging"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "DOCRULES_"

// Config is the resolved tool configuration.
type Config struct {
	Resolver ResolverConfig `koanf:"resolver" toml:"resolver"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// ResolverConfig configures rule-set loading.
type ResolverConfig struct {
	// RuleFiles are extra rule-set files loaded after the discovered ones,
	// in the order listed. Paths are repository-relative or absolute.
	RuleFiles []string `koanf:"rule_files" toml:"rule_files"`
}

// OutputConfig configures terminal output.
type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `koanf:"color" toml:"color"`

	// Style is the glamour style for rendered markdown: "auto", "dark",
	// "light", "notty", or a path to a custom style file.
	Style string `koanf:"style" toml:"style"`

	// Width is the word-wrap width for rendered markdown; 0 auto-detects.
	Width int `koanf:"width" toml:"width"`
}

// defaults returns the built-in configuration layer.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"resolver.rule_files": []string{},
		"output.color":        "auto",
		"output.style":        "auto",
		"output.width":        0,
	}
}

// Default returns the built-in configuration as a typed struct.
func Default() *Config {
	return &Config{
		Resolver: ResolverConfig{RuleFiles: []string{}},
		Output:   OutputConfig{Color: "auto", Style: "auto", Width: 0},
	}
}

// Load builds the layered configuration. configFile is the per-repository
// config file path; a missing file is fine, a present-but-broken one is not.
func Load(configFile string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "load defaults")
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "config file %s", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("Loaded config file")
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		// DOCRULES_OUTPUT_COLOR -> output.color; only the first underscore
		// separates section from key, so resolver.rule_files stays intact.
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(s, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "unmarshal configuration")
	}

	return &cfg, nil
}
