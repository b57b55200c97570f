package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.TwoColumnMinWidth != DefaultTwoColumnMinWidth {
		t.Errorf("TwoColumnMinWidth: got %d, want %d", cfg.TwoColumnMinWidth, DefaultTwoColumnMinWidth)
	}
	if cfg.BannerSeconds != DefaultBannerSeconds {
		t.Errorf("BannerSeconds: got %d, want %d", cfg.BannerSeconds, DefaultBannerSeconds)
	}
	want := DefaultSeedTitles()
	if len(cfg.SeedTitles) != len(want) || cfg.SeedTitles[0] != want[0] {
		t.Errorf("SeedTitles: got %v, want %v", cfg.SeedTitles, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.toml")
	body := `
theme = "light"
two_column_min_width = 100
banner_seconds = 5
seed_titles = ["One", "Two", "Three"]
log_file = "debug.log"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme: got %q, want light", cfg.Theme)
	}
	if cfg.TwoColumnMinWidth != 100 {
		t.Errorf("TwoColumnMinWidth: got %d, want 100", cfg.TwoColumnMinWidth)
	}
	if cfg.BannerSeconds != 5 {
		t.Errorf("BannerSeconds: got %d, want 5", cfg.BannerSeconds)
	}
	if len(cfg.SeedTitles) != 3 {
		t.Errorf("SeedTitles: got %v", cfg.SeedTitles)
	}
	if cfg.LogFile != "debug.log" {
		t.Errorf("LogFile: got %q", cfg.LogFile)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.toml")
	if err := os.WriteFile(path, []byte(`theme = "light"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme: got %q, want light", cfg.Theme)
	}
	if cfg.TwoColumnMinWidth != DefaultTwoColumnMinWidth {
		t.Errorf("TwoColumnMinWidth lost its default: %d", cfg.TwoColumnMinWidth)
	}
	if len(cfg.SeedTitles) != 2 {
		t.Errorf("SeedTitles lost their default: %v", cfg.SeedTitles)
	}
}

func TestLoadUnknownThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.toml")
	if err := os.WriteFile(path, []byte(`theme = "neon"`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("Theme: got %q, want fallback %q", cfg.Theme, DefaultTheme)
	}
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdeck.toml")
	if err := os.WriteFile(path, []byte(`theme = [`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load: want error for malformed TOML")
	}
}
