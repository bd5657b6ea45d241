package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.DBPath)
	require.Equal(t, DefaultBackupInterval, cfg.BackupInterval)
	require.Empty(t, cfg.GeminiAPIKey)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("FOCUSARENA_DB", "/tmp/arena.db")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("FOCUSARENA_BACKUP_INTERVAL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/arena.db", cfg.DBPath)
	require.Equal(t, "test-key", cfg.GeminiAPIKey)
	require.Equal(t, 5*time.Minute, cfg.BackupInterval)
}
