// Package config holds catena configuration: a YAML file with sane
// defaults, overridable by environment variables. The engine itself needs
// no configuration to run; everything here tunes diagnostics.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all catena configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the categorized file logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle; false means no log files at all.
	Level      string          `yaml:"level"`      // debug, info, warn, error
	Dir        string          `yaml:"dir"`        // Log directory
	Categories map[string]bool `yaml:"categories"` // Per-category toggles; empty means all.
}

// IsCategoryEnabled reports whether logging is enabled for a category.
func (c *LoggingConfig) IsCategoryEnabled(category string) bool {
	if !c.DebugMode {
		return false
	}
	if c.Categories == nil {
		return true
	}
	enabled, exists := c.Categories[category]
	if !exists {
		return true
	}
	return enabled
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			Dir:       "catena-logs",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CATENA_DEBUG"); v == "1" || v == "true" {
		c.Logging.DebugMode = true
	}
	if v := os.Getenv("CATENA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CATENA_LOG_DIR"); v != "" {
		c.Logging.Dir = v
	}
}
