// Package config holds the solver's settings, read from an optional YAML
// file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults used for any setting the config file leaves out.
const (
	DefaultMaxVariables  = 20
	DefaultListenAddress = ":8080"
)

type Config struct {
	// MaxVariables caps how many distinct variables a truth table may
	// enumerate. Row count is 2^n, so raise this with care.
	MaxVariables int `yaml:"max-variables"`

	// ListenAddress is where the HTTP front end binds, e.g. ":8080".
	ListenAddress string `yaml:"listen-address"`

	// Path is where the config was loaded from and where Write puts it.
	Path string `yaml:"-"`
}

// Default returns a Config with every setting at its default value.
func Default() *Config {
	return &Config{
		MaxVariables:  DefaultMaxVariables,
		ListenAddress: DefaultListenAddress,
	}
}

// LoadConfig reads the config from the given path. Settings missing from the
// file keep their defaults. If the file doesn't exist the error satisfies
// os.IsNotExist, letting callers fall back to Default.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if config.MaxVariables <= 0 {
		config.MaxVariables = DefaultMaxVariables
	}
	if config.ListenAddress == "" {
		config.ListenAddress = DefaultListenAddress
	}

	config.Path = path
	return config, nil
}

// Write persists the config to c.Path.
func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}

	return nil
}
