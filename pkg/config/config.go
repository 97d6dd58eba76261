// Package config provides configuration management functionality for jiractl.
package config

import (
	"fmt"
	"net/url"

	"github.com/lerenn/jiractl/configs"
	"github.com/lerenn/jiractl/pkg/output"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server   string `yaml:"server"`
	User     string `yaml:"user"`
	Password string `yaml:"password,omitempty"`
	Format   string `yaml:"format,omitempty"`
}

// DefaultConfig returns the configuration described by the embedded template.
func DefaultConfig() Config {
	var cfg Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Validate validates the configuration values. Empty values are valid.
func (c Config) Validate() error {
	if c.Server != "" {
		u, err := url.Parse(c.Server)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidServer, c.Server)
		}
	}

	if c.Format != "" {
		if _, err := output.ParseFormat(c.Format); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
	}

	return nil
}

// DisplayFormat returns the configured display format, or the terminal
// dependent default when none is configured.
func (c Config) DisplayFormat() output.Format {
	if f, err := output.ParseFormat(c.Format); err == nil {
		return f
	}
	return output.DefaultFormat()
}
