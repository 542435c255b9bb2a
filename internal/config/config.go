// Package config loads the typers YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all typers configuration.
type Config struct {
	// Output settings for the CLI
	Output OutputConfig `yaml:"output"`

	// Law checking
	Check CheckConfig `yaml:"check"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
	Color  string `yaml:"color"`  // auto, always, never
}

// ValidFormats lists the supported output formats.
var ValidFormats = []string{"text", "json"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Check: CheckConfig{
			MaxValue: 16,
			Workers:  4,
			Timeout:  "30s",
		},
		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
		},
	}
}

// DefaultConfigPath returns ~/.config/typers/typers.yaml, or typers.yaml in
// the working directory when the home directory is unknown.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "typers.yaml"
	}
	return filepath.Join(dir, "typers", "typers.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Defaults if config file doesn't exist
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("TYPERS_OUTPUT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("TYPERS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("TYPERS_DEBUG"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TYPERS_DEBUG: %w", err)
		}
		c.Logging.DebugMode = on
	}
	if v := os.Getenv("TYPERS_CHECK_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TYPERS_CHECK_MAX: %w", err)
		}
		c.Check.MaxValue = n
	}
	if v := os.Getenv("TYPERS_CHECK_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TYPERS_CHECK_WORKERS: %w", err)
		}
		c.Check.Workers = n
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	valid := false
	for _, f := range ValidFormats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, ValidFormats)
	}

	switch strings.ToLower(c.Output.Color) {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %s", c.Output.Color)
	}

	return c.Check.Validate()
}
