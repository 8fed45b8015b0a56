// Package config loads the penplot tool settings from TOML.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the penplot tool.
type Config struct {
	Output OutputConfig `toml:"output"`
	Parse  ParseConfig  `toml:"parse"`
}

// OutputConfig selects how decoded scripts are printed.
type OutputConfig struct {
	Format string `toml:"format"`
}

// ParseConfig controls batch parsing.
type ParseConfig struct {
	Policy    string `toml:"policy"`
	SkipBlank bool   `toml:"skip_blank"`
}

// Accepted values for Output.Format and Parse.Policy.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	PolicyStop    = "stop"
	PolicyCollect = "collect"
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: FormatText},
		Parse:  ParseConfig{Policy: PolicyStop, SkipBlank: true},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown format or policy names.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	switch c.Parse.Policy {
	case PolicyStop, PolicyCollect:
	default:
		return fmt.Errorf("unknown parse policy %q", c.Parse.Policy)
	}
	return nil
}
