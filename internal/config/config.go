// Package config loads Focus Arena configuration from YAML files and
// environment variables, defaults-first.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings for the arena CLI.
type Config struct {
	// DBPath is where the snapshot database lives.
	DBPath string `yaml:"db_path"`

	// GeminiAPIKey authenticates the brief provider. Usually set via the
	// GEMINI_API_KEY environment variable rather than the file.
	GeminiAPIKey string `yaml:"gemini_api_key"`

	// GeminiModel is tried before the built-in fallback chain when set.
	GeminiModel string `yaml:"gemini_model"`

	// LogFile is the rotating log destination.
	LogFile string `yaml:"log_file"`

	// BackupDir is where snapshot exports land.
	BackupDir string `yaml:"backup_dir"`

	// BackupInterval enables periodic export during TUI sessions when > 0.
	BackupInterval time.Duration `yaml:"backup_interval"`
}

const DefaultBackupInterval = 30 * time.Minute

// Load reads configuration.
// Priority (highest to lowest):
// 1. Environment variables
// 2. ~/.config/focusarena/config.yaml
// 3. ~/.focusarena.yaml
// 4. Defaults
func Load() (*Config, error) {
	cfg := &Config{
		BackupInterval: DefaultBackupInterval,
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		cfg.DBPath = filepath.Join(homeDir, ".focusarena.db")
		cfg.LogFile = filepath.Join(homeDir, ".focusarena.log")
		cfg.BackupDir = filepath.Join(homeDir, "focusarena-backups")

		legacyPath := filepath.Join(homeDir, ".focusarena.yaml")
		if data, err := os.ReadFile(legacyPath); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
		xdgPath := filepath.Join(homeDir, ".config", "focusarena", "config.yaml")
		if data, err := os.ReadFile(xdgPath); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if val := os.Getenv("FOCUSARENA_DB"); val != "" {
		c.DBPath = val
	}
	if val := os.Getenv("GEMINI_API_KEY"); val != "" {
		c.GeminiAPIKey = val
	}
	if val := os.Getenv("FOCUSARENA_MODEL"); val != "" {
		c.GeminiModel = val
	}
	if val := os.Getenv("FOCUSARENA_LOG"); val != "" {
		c.LogFile = val
	}
	if val := os.Getenv("FOCUSARENA_BACKUP_DIR"); val != "" {
		c.BackupDir = val
	}
	if val := os.Getenv("FOCUSARENA_BACKUP_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			c.BackupInterval = d
		}
	}
}
