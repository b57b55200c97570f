// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultConfigFile        = "taskdeck.toml"
	DefaultTheme             = "dark"
	DefaultTwoColumnMinWidth = 72
	DefaultBannerSeconds     = 2
)

// DefaultSeedTitles returns the example titles used to fill an
// empty store on startup.
func DefaultSeedTitles() []string {
	return []string{"Performance Task", "Written Task"}
}

// Config holds the full configuration for taskdeck.
type Config struct {
	// Display
	Theme             string `toml:"theme"` // dark or light
	TwoColumnMinWidth int    `toml:"two_column_min_width"`
	BannerSeconds     int    `toml:"banner_seconds"`

	// Startup
	SeedTitles []string `toml:"seed_titles"`

	// Debug log destination; empty disables logging entirely.
	LogFile string `toml:"log_file"`
}

// Default returns a config with every field at its default.
func Default() Config {
	return Config{
		Theme:             DefaultTheme,
		TwoColumnMinWidth: DefaultTwoColumnMinWidth,
		BannerSeconds:     DefaultBannerSeconds,
		SeedTitles:        DefaultSeedTitles(),
	}
}

// Load reads a TOML config from path. A missing file is not an
// error: defaults come back. Fields absent from the file keep their
// defaults; unknown theme names fall back to dark.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultConfigFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	switch c.Theme {
	case "dark", "light":
	default:
		c.Theme = DefaultTheme
	}
	if c.TwoColumnMinWidth <= 0 {
		c.TwoColumnMinWidth = DefaultTwoColumnMinWidth
	}
	if c.BannerSeconds <= 0 {
		c.BannerSeconds = DefaultBannerSeconds
	}
	if c.SeedTitles == nil {
		c.SeedTitles = DefaultSeedTitles()
	}
}
