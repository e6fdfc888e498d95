// Package config handles loading and saving user configuration for charcount.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file inside the config directory.
const FileName = "config.yaml"

// Theme settings accepted in the config file.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	DefaultDensityRows = 5
	DefaultBarWidth    = 30
)

// Config holds all user configuration for charcount.
type Config struct {
	Theme             string `yaml:"theme"`              // auto, light or dark
	ExcludeWhitespace bool   `yaml:"exclude_whitespace"` // Initial state of the exclude-space option
	DensityRows       int    `yaml:"density_rows"`       // Rows shown before "See more"
	BarWidth          int    `yaml:"bar_width"`          // Width of density bars in cells
	BigNumbers        bool   `yaml:"big_numbers"`        // Render counts as block numerals
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:       ThemeAuto,
		DensityRows: DefaultDensityRows,
		BarWidth:    DefaultBarWidth,
		BigNumbers:  true,
	}
}

// Validate normalizes out-of-range values and rejects unknown themes.
func (c *Config) Validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	switch c.Theme {
	case "":
		c.Theme = ThemeAuto
	case ThemeAuto, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q (want auto, light or dark)", c.Theme)
	}

	if c.DensityRows < 1 {
		c.DensityRows = DefaultDensityRows
	}
	if c.BarWidth < 1 {
		c.BarWidth = DefaultBarWidth
	}
	return nil
}

// Load reads configuration from a YAML file. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	return cfg, nil
}

// LoadDir loads config.yaml from dir, falling back to defaults when the
// file does not exist.
func LoadDir(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "charcount"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "charcount"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
