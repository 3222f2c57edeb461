package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds persistent user configuration
type Config struct {
	Theme       string   `json:"theme"`        // Active theme name or file path
	ThemeDirs   []string `json:"theme_dirs"`   // Directories searched for theme files
	OverridesDB string   `json:"overrides_db"` // SQLite database for color overrides
	HotReload   bool     `json:"hot_reload"`   // Watch the active theme file for edits
	DebounceMs  int      `json:"debounce_ms"`  // Reload debounce window in milliseconds
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:      "default-dark",
		HotReload:  true,
		DebounceMs: 250,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".vftheme")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.json"), nil
}

// Load reads the config file from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFrom(path)
}

// LoadFrom reads a config file at an explicit path, or returns defaults
// if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.DebounceMs <= 0 {
		cfg.DebounceMs = DefaultConfig().DebounceMs
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	return SaveTo(path, cfg)
}

// SaveTo writes the config to an explicit path.
func SaveTo(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// OverridesDBPath resolves the overrides database path, defaulting to a
// file alongside the config when unset.
func (c *Config) OverridesDBPath() (string, error) {
	if c.OverridesDB != "" {
		return c.OverridesDB, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".vftheme")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "overrides.db"), nil
}

// FindTheme searches the configured theme directories for name with a
// .json or .toml extension. An explicit path that exists is returned as is.
func (c *Config) FindTheme(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	for _, dir := range c.ThemeDirs {
		for _, ext := range []string{".json", ".toml"} {
			candidate := filepath.Join(dir, name+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", fmt.Errorf("theme %q not found in configured theme directories", name)
}
