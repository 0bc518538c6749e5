// Package config provides configuration loading and management for guidekb.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete guidekb configuration
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Watch   WatchConfig   `yaml:"watch"`
	Log     LogConfig     `yaml:"log"`
}

// SourcesConfig configures corpus discovery
type SourcesConfig struct {
	// Paths are files, directories, or glob patterns (** supported).
	// Empty means use the embedded default corpus.
	Paths []string `yaml:"paths"`
	// Extensions lists the file extensions treated as corpus sources
	Extensions []string `yaml:"extensions"`
}

// WatchConfig configures corpus file watching
type WatchConfig struct {
	// Enabled controls whether the watch command rebuilds on change
	Enabled bool `yaml:"enabled"`
	// DebounceDelay is how long to wait for more changes before reloading
	DebounceDelay time.Duration `yaml:"debounce_delay"`
}

// LogConfig configures logging output
type LogConfig struct {
	// Level is the slog level name (debug, info, warn, error)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Sources: SourcesConfig{
			Paths:      nil, // embedded corpus
			Extensions: []string{".md", ".markdown", ".txt", ".html", ".htm"},
		},
		Watch: WatchConfig{
			Enabled:       false,
			DebounceDelay: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Watch.DebounceDelay < 0 {
		return fmt.Errorf("watch.debounce_delay must not be negative")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Sources
	if len(other.Sources.Paths) > 0 {
		c.Sources.Paths = other.Sources.Paths
	}
	if len(other.Sources.Extensions) > 0 {
		c.Sources.Extensions = other.Sources.Extensions
	}

	// Watch
	if other.Watch.Enabled {
		c.Watch.Enabled = true
	}
	if other.Watch.DebounceDelay != 0 {
		c.Watch.DebounceDelay = other.Watch.DebounceDelay
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}
