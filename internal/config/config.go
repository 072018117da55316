// Package config loads editor settings from a TOML or YAML file and
// applies defaults for anything unset.
package config

import "fmt"

// DefaultTabWidth is the tab width used when the settings file does not
// set one.
const DefaultTabWidth = 4

// DefaultTheme is the theme used when the settings file does not set one.
const DefaultTheme = "pink"

// Config holds the user-tunable editor settings.
type Config struct {
	// TabWidth is the display width of a tab character. Must be positive.
	TabWidth int `toml:"tab_width" yaml:"tab_width"`

	// Theme names a built-in color theme.
	Theme string `toml:"theme" yaml:"theme"`

	// Colors overrides individual theme colors with hex values, keyed by
	// color name ("fg", "bg", "keyword", ...).
	Colors map[string]string `toml:"colors" yaml:"colors"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TabWidth: DefaultTabWidth,
		Theme:    DefaultTheme,
	}
}

// normalize fills unset fields with defaults and rejects invalid values.
func (c *Config) normalize() error {
	if c.TabWidth == 0 {
		c.TabWidth = DefaultTabWidth
	}
	if c.TabWidth < 0 {
		return fmt.Errorf("tab_width must be positive, got %d", c.TabWidth)
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	return nil
}
