package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── parseFile ─────────────────────────────────────────────────────────────────

func TestParseFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"app": {"encryption_enabled": true, "encryption_key_file": "k.bin"},
		"storage": {"db": {"dsn": "records.db"}},
		"retention": {"enabled": true, "days": 45, "sweep_interval": "12h"}
	}`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.EncryptionEnabled)
	assert.Equal(t, "k.bin", cfg.App.EncryptionKeyFile)
	assert.Equal(t, "records.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Retention.Enabled)
	assert.Equal(t, 45, cfg.Retention.Days)
	assert.Equal(t, 12*time.Hour, cfg.Retention.SweepInterval)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
app:
  encryption_enabled: true
  log_level: info
storage:
  db:
    dsn: postgres://localhost/records
retention:
  days: 60
  sweep_interval: 30m
`)

	cfg, err := parseFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.EncryptionEnabled)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "postgres://localhost/records", cfg.Storage.DB.DSN)
	assert.Equal(t, 60, cfg.Retention.Days)
	assert.Equal(t, 30*time.Minute, cfg.Retention.SweepInterval)
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `x = 1`)

	_, err := parseFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedConfigFile)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestParseFile_BadDuration(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"retention": {"sweep_interval": "soon"}}`)

	_, err := parseFile(path)
	require.Error(t, err)
}
