// Package config holds user preferences for the console, stored as YAML in
// the data directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all crewdesk configuration.
type Config struct {
	// Theme is "light" or "dark".
	Theme string `yaml:"theme"`

	Storage  StorageConfig  `yaml:"storage"`
	Toast    ToastConfig    `yaml:"toast"`
	Currency CurrencyConfig `yaml:"currency"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Backend is "sqlite", "file" or "memory".
	Backend string `yaml:"backend"`
	// Path is the database file (sqlite) or collections directory (file).
	// Empty means a default under the data directory.
	Path string `yaml:"path"`
}

type ToastConfig struct {
	// DurationMs is how long a notification stays on screen.
	DurationMs int `yaml:"duration_ms"`
}

// CurrencyConfig controls amount rendering. Defaults follow the French
// locale with a euro suffix.
type CurrencyConfig struct {
	Grapheme string `yaml:"grapheme"`
	Decimal  string `yaml:"decimal"`
	Thousand string `yaml:"thousand"`
	Fraction int    `yaml:"fraction"`
}

type LoggingConfig struct {
	// Level is a zap level string: debug, info, warn, error.
	Level string `yaml:"level"`
	// File is the log destination; empty means crewdesk.log in the data
	// directory. The TUI owns stdout, so logs never go there.
	File string `yaml:"file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Theme: "light",
		Storage: StorageConfig{
			Backend: "sqlite",
		},
		Toast: ToastConfig{
			DurationMs: 1600,
		},
		Currency: CurrencyConfig{
			Grapheme: "€",
			Decimal:  ",",
			Thousand: " ",
			Fraction: 2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DataDir returns the directory holding config, store and logs. A
// project-local .crewdesk directory wins over the home-level one.
func DataDir() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".crewdesk")
		if stat, err := os.Stat(localDir); err == nil && stat.IsDir() {
			return localDir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".crewdesk"), nil
}

func configFile() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from disk. An absent file yields defaults.
// Environment overrides apply last.
func Load() (Config, error) {
	cfg := Default()

	path, err := configFile()
	if err != nil {
		cfg.applyEnvOverrides()
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		cfg.applyEnvOverrides()
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		defaults := Default()
		defaults.applyEnvOverrides()
		return defaults, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to disk.
func Save(cfg Config) error {
	dir, err := DataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := configFile()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides lets the environment win over the config file.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("CREWDESK_THEME"); theme != "" {
		c.Theme = theme
	}
	if backend := os.Getenv("CREWDESK_STORAGE"); backend != "" {
		c.Storage.Backend = backend
	}
	if path := os.Getenv("CREWDESK_DB_PATH"); path != "" {
		c.Storage.Path = path
	}
	if level := os.Getenv("CREWDESK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// StorePath resolves the backend location, defaulting under the data
// directory.
func (c Config) StorePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if c.Storage.Backend == "file" {
		return filepath.Join(dir, "collections"), nil
	}
	return filepath.Join(dir, "crewdesk.db"), nil
}

// LogFile resolves the log destination.
func (c Config) LogFile() (string, error) {
	if c.Logging.File != "" {
		return c.Logging.File, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crewdesk.log"), nil
}
