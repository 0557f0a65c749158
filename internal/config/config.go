// Package config loads the optional user configuration file. Everything has
// a sensible default; a missing file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user-tunable application configuration.
type Config struct {
	// Theme selects the color theme. Currently only "gruvbox" ships.
	Theme string `yaml:"theme"`
	// Animations toggles progress-bar and transition animations.
	Animations bool `yaml:"animations"`
	// DataDir overrides where progress and history are stored.
	DataDir string `yaml:"data_dir"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:      "gruvbox",
		Animations: true,
	}
}

// Load reads the config at path, falling back to defaults when the file is
// missing. A present but malformed file is an error: silently ignoring a
// typo'd config is worse than failing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the standard config location under the given home
// directory.
func DefaultPath(home string) string {
	return filepath.Join(home, "config.yaml")
}

func (c *Config) validate() error {
	if c.Theme != "" && c.Theme != "gruvbox" {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}
