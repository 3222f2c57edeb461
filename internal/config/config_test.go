package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "default-dark" {
		t.Errorf("Expected default theme 'default-dark', got %s", cfg.Theme)
	}
	if !cfg.HotReload {
		t.Error("Hot reload should default to on")
	}
	if cfg.DebounceMs != 250 {
		t.Errorf("Expected default debounce 250ms, got %d", cfg.DebounceMs)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Errorf("Missing file should yield defaults, got theme %s", cfg.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := &Config{
		Theme:       "gruvbox-dark",
		ThemeDirs:   []string{"/opt/themes", "/usr/share/themes"},
		OverridesDB: "/tmp/overrides.db",
		HotReload:   true,
		DebounceMs:  500,
	}
	if err := SaveTo(path, original); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Theme != "gruvbox-dark" {
		t.Errorf("Expected theme 'gruvbox-dark', got %s", loaded.Theme)
	}
	if len(loaded.ThemeDirs) != 2 || loaded.ThemeDirs[0] != "/opt/themes" {
		t.Errorf("Theme dirs did not round trip: %v", loaded.ThemeDirs)
	}
	if loaded.OverridesDB != "/tmp/overrides.db" {
		t.Errorf("Expected overrides db path, got %s", loaded.OverridesDB)
	}
	if loaded.DebounceMs != 500 {
		t.Errorf("Expected debounce 500, got %d", loaded.DebounceMs)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected an error for malformed config")
	}
}

func TestLoadFromRepairsDebounce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"theme":"x","debounce_ms":-5}`), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.DebounceMs != DefaultConfig().DebounceMs {
		t.Errorf("Non-positive debounce should reset to default, got %d", cfg.DebounceMs)
	}
}

func TestFindTheme(t *testing.T) {
	dir := t.TempDir()
	jsonTheme := filepath.Join(dir, "midnight.json")
	if err := os.WriteFile(jsonTheme, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	tomlTheme := filepath.Join(dir, "daylight.toml")
	if err := os.WriteFile(tomlTheme, []byte(""), 0644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}

	cfg := &Config{ThemeDirs: []string{dir}}

	// By name, either extension.
	if found, err := cfg.FindTheme("midnight"); err != nil || found != jsonTheme {
		t.Errorf("Expected %s, got %s (err=%v)", jsonTheme, found, err)
	}
	if found, err := cfg.FindTheme("daylight"); err != nil || found != tomlTheme {
		t.Errorf("Expected %s, got %s (err=%v)", tomlTheme, found, err)
	}

	// Explicit path passes through.
	if found, err := cfg.FindTheme(jsonTheme); err != nil || found != jsonTheme {
		t.Errorf("Expected explicit path passthrough, got %s (err=%v)", found, err)
	}

	if _, err := cfg.FindTheme("nope"); err == nil {
		t.Error("Expected an error for an unknown theme name")
	}
}
