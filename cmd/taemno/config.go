package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk CLI configuration.
type Config struct {
	Backend string `yaml:"backend"`
	Prefix  string `yaml:"prefix"`
	Suffix  string `yaml:"suffix"`
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".taemno", "config.yaml")
}

// LoadConfig loads configuration from path. An empty path falls back to
// TAEMNO_CONFIG, then the default path.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		if path = os.Getenv("TAEMNO_CONFIG"); path == "" {
			path = DefaultConfigPath()
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}
