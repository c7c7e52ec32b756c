// Package config loads run defaults from configuration files and the
// environment. Command-line flags always win; the configuration only fills
// in what the user did not say on the command line.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete fzgrep configuration.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SearchConfig holds default scan parameters.
type SearchConfig struct {
	// BeforeContext is the default number of leading context lines.
	BeforeContext int `yaml:"before_context"`

	// AfterContext is the default number of trailing context lines.
	AfterContext int `yaml:"after_context"`

	// Top caps the number of results kept; 0 keeps them all.
	Top int `yaml:"top"`

	// CacheSize is the line-score memoization cache capacity.
	CacheSize int `yaml:"cache_size"`

	// Include and Exclude are default glob filters for recursive scans.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// OutputConfig holds presentation defaults.
type OutputConfig struct {
	// Color is the default color mode: auto, always or never.
	Color string `yaml:"color"`
}

// LogConfig holds diagnostics defaults.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn or error.
	Level string `yaml:"level"`
}

// NewConfig creates a Config with the built-in defaults.
func NewConfig() *Config {
	return &Config{
		Search: SearchConfig{
			CacheSize: 4096,
		},
		Output: OutputConfig{
			Color: "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// GetUserConfigPath returns the path to the user configuration file,
// following the XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/fzgrep/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/fzgrep/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fzgrep", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "fzgrep", "config.yaml")
	}
	return filepath.Join(home, ".config", "fzgrep", "config.yaml")
}

// Load builds the effective configuration for a run rooted at dir.
// It applies configuration in order of increasing precedence:
//  1. Built-in defaults
//  2. User config ($XDG_CONFIG_HOME/fzgrep/config.yaml)
//  3. Directory config (.fzgrep.yaml in dir)
//  4. Environment variables (FZGREP_*)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if path := GetUserConfigPath(); fileExists(path) {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadFromDir(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromDir attempts to load .fzgrep.yaml or .fzgrep.yml from dir.
// No config file is fine; the defaults stand.
func (c *Config) loadFromDir(dir string) error {
	for _, name := range []string{".fzgrep.yaml", ".fzgrep.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return c.loadYAML(path)
		}
	}
	return nil
}

// loadYAML merges the values from a YAML file into c. Only values the file
// actually sets override the current ones.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Search.BeforeContext != 0 {
		c.Search.BeforeContext = other.Search.BeforeContext
	}
	if other.Search.AfterContext != 0 {
		c.Search.AfterContext = other.Search.AfterContext
	}
	if other.Search.Top != 0 {
		c.Search.Top = other.Search.Top
	}
	if other.Search.CacheSize != 0 {
		c.Search.CacheSize = other.Search.CacheSize
	}
	if len(other.Search.Include) > 0 {
		c.Search.Include = other.Search.Include
	}
	if len(other.Search.Exclude) > 0 {
		c.Search.Exclude = other.Search.Exclude
	}
	if other.Output.Color != "" {
		c.Output.Color = other.Output.Color
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// applyEnvOverrides applies FZGREP_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FZGREP_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("FZGREP_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("FZGREP_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Search.CacheSize = n
		}
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.Search.BeforeContext < 0 {
		return fmt.Errorf("search.before_context must be non-negative, got %d", c.Search.BeforeContext)
	}
	if c.Search.AfterContext < 0 {
		return fmt.Errorf("search.after_context must be non-negative, got %d", c.Search.AfterContext)
	}
	if c.Search.Top < 0 {
		return fmt.Errorf("search.top must be non-negative, got %d", c.Search.Top)
	}
	if c.Search.CacheSize <= 0 {
		return fmt.Errorf("search.cache_size must be positive, got %d", c.Search.CacheSize)
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.Output.Color)] {
		return fmt.Errorf("output.color must be 'auto', 'always' or 'never', got %s", c.Output.Color)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Log.Level)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
