package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win and zero fields do not erase earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}, App: App{LogLevel: "debug"}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "flag.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "x.db"}}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultEncryptionKeyFile, cfg.App.EncryptionKeyFile)
	assert.Equal(t, DefaultRetentionDays, cfg.Retention.Days)
	assert.Equal(t, DefaultSweepInterval, cfg.Retention.SweepInterval)
}

func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{"missing dsn", StructuredConfig{}, ErrInvalidStorageConfigs},
		{
			"passphrase without salt",
			StructuredConfig{Storage: Storage{DB: DB{DSN: "x.db"}}, App: App{EncryptionPassphrase: "p"}},
			ErrInvalidAppConfigs,
		},
		{
			"negative retention",
			StructuredConfig{Storage: Storage{DB: DB{DSN: "x.db"}}, Retention: Retention{Days: -1}},
			ErrInvalidRetentionConfigs,
		},
		{
			"negative interval",
			StructuredConfig{Storage: Storage{DB: DB{DSN: "x.db"}}, Retention: Retention{SweepInterval: -time.Second}},
			ErrInvalidRetentionConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			cfg := tt.cfg
			b.configs = append(b.configs, &cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetStructuredConfig_EnvFlagsAndFile(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("STORAGE_DB_DATABASE_URI", "env.db")
	t.Setenv("APP_LOG_LEVEL", "info")

	path := writeTempConfig(t, "cfg.yaml", "retention:\n  days: 14\n")

	cfg, err := GetStructuredConfig([]string{"-d", "flag.db", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 14, cfg.Retention.Days)
	assert.Equal(t, path, cfg.FilePath)
}
