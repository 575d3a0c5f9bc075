// Package config loads the optional sheetsite configuration file. The
// generator works with built-in defaults; a config file only overrides them.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no --config flag is given.
const DefaultPath = "sheetsite.yaml"

// Style values for SiteConfig.Style.
const (
	StyleInline   = "inline"
	StyleExternal = "external"
)

// Config represents the application configuration
type Config struct {
	Site  SiteConfig  `yaml:"site"`
	Table TableConfig `yaml:"table"`
}

// SiteConfig controls the generated page.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Intro       string `yaml:"intro,omitempty"`      // optional markdown file rendered above the table
	Style       string `yaml:"style"`                // "inline" or "external"
	Stylesheet  string `yaml:"stylesheet,omitempty"` // custom CSS file for external style
	Fonts       bool   `yaml:"fonts"`                // include decorative web-font links
}

// TableConfig controls how the input is read and projected.
type TableConfig struct {
	KeepBlankColumns bool   `yaml:"keep_blank_columns"`
	Delimiter        string `yaml:"delimiter"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			Title: "Sheet Table",
			Style: StyleInline,
			Fonts: true,
		},
		Table: TableConfig{
			Delimiter: ",",
		},
	}
}

// Load loads configuration from the specified file
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists; config values may reference its variables.
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	config := Default()
	if err := yaml.Unmarshal([]byte(expandedData), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Resolve loads the config at path, or falls back to DefaultPath when path is
// empty. A missing DefaultPath is not an error; an explicitly given missing
// path is, and so is a DefaultPath that exists but cannot be inspected.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", DefaultPath, err)
	}
	return Load(DefaultPath)
}

func (c *Config) validate() error {
	switch c.Site.Style {
	case StyleInline, StyleExternal:
	default:
		return fmt.Errorf("invalid site.style %q (expected %q or %q)", c.Site.Style, StyleInline, StyleExternal)
	}
	if utf8.RuneCountInString(c.Table.Delimiter) != 1 {
		return fmt.Errorf("invalid table.delimiter %q (expected a single character)", c.Table.Delimiter)
	}
	if strings.TrimSpace(c.Site.Title) == "" {
		return fmt.Errorf("site.title must not be blank")
	}
	return nil
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Table.Delimiter)
	return r
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Default()
	example.Site.Title = "Sheet Table"
	example.Site.Description = "Searchable export of a spreadsheet"

	data, err := yaml.Marshal(example)
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}

	header := "# sheetsite configuration\n# All keys are optional; missing keys keep their defaults.\n"
	if err := os.WriteFile(configPath, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
