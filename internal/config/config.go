// Package config handles configuration loading and validation.
package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Values are resolved in
// order: defaults, then the optional YAML file, then ARRGO_* environment
// variables.
type Config struct {
	// Backend names the compute backend to select at startup.
	Backend string `envconfig:"ARRGO_BACKEND" yaml:"backend"`

	// Verbose enables diagnostic output in the CLI.
	Verbose bool `envconfig:"ARRGO_VERBOSE" yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: "cpu",
	}
}

// Load resolves the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for obvious mistakes. Backend names
// are resolved (and rejected) by the backend package, not here.
func (c *Config) Validate() error {
	if c.Backend == "" {
		return fmt.Errorf("backend name must not be empty")
	}
	return nil
}
