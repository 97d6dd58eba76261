package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
// An empty path selects DefaultConfigPath.
func NewManager(configPath string) Manager {
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	return &realManager{
		configPath: configPath,
	}
}

// DefaultConfigPath returns ~/.jiractl/config.yaml.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".jiractl", "config.yaml")
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if os.IsNotExist(err) {
		return Config{}, errors.WithHint(fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath),
			"run 'jiractl init' to create it")
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", c.configPath)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid configuration in %s", c.configPath)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to the default
// one when the file does not exist.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// SaveConfig saves configuration to the embedded config path with owner-only permissions.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal configuration")
	}

	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write configuration file")
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return DefaultConfig()
}
