// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a dotenv file, environment variables, command-line
// flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - json/yaml: key names used by the optional config file.
type StructuredConfig struct {
	// App holds application-level settings such as the encryption toggle and
	// the key source.
	App App `envPrefix:"APP_" json:"app" yaml:"app"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_" json:"storage" yaml:"storage"`

	// Retention holds the GDPR retention sweep settings.
	Retention Retention `envPrefix:"RETENTION_" json:"retention" yaml:"retention"`

	// FilePath is the optional path to a JSON (.json) or YAML (.yaml, .yml)
	// configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG" json:"-" yaml:"-"`

	// EnvFilePath is the dotenv file loaded before the environment is parsed.
	// Populated via the ENV_FILE environment variable; defaults to ".env".
	EnvFilePath string `env:"ENV_FILE" json:"-" yaml:"-"`
}

// App holds application-level configuration values.
type App struct {
	// EncryptionEnabled turns on diagnosis encryption for new writes and
	// decryption attempts for every read.
	// Env: APP_ENCRYPTION_ENABLED
	EncryptionEnabled bool `env:"ENCRYPTION_ENABLED" json:"encryption_enabled" yaml:"encryption_enabled"`

	// EncryptionKeyFile is where the raw data key lives. Missing files are
	// created with a fresh key on first use.
	// Env: APP_ENCRYPTION_KEY_FILE
	EncryptionKeyFile string `env:"ENCRYPTION_KEY_FILE" json:"encryption_key_file" yaml:"encryption_key_file"`

	// EncryptionPassphrase, when set, derives the key with Argon2id instead of
	// reading EncryptionKeyFile. Must be kept confidential.
	// Env: APP_ENCRYPTION_PASSPHRASE
	EncryptionPassphrase string `env:"ENCRYPTION_PASSPHRASE" json:"encryption_passphrase" yaml:"encryption_passphrase"`

	// EncryptionSalt is the Argon2id salt used with EncryptionPassphrase.
	// Env: APP_ENCRYPTION_SALT
	EncryptionSalt string `env:"ENCRYPTION_SALT" json:"encryption_salt" yaml:"encryption_salt"`

	// LogLevel is a zerolog level name (e.g. "info").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level" yaml:"log_level"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION" json:"version" yaml:"version"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_" json:"db" yaml:"db"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://" and "postgresql://" URLs open
	// PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" json:"dsn" yaml:"dsn"`
}

// Retention holds the settings of the background retention sweep.
type Retention struct {
	// Enabled starts the sweep worker in recordsd.
	// Env: RETENTION_ENABLED
	Enabled bool `env:"ENABLED" json:"enabled" yaml:"enabled"`

	// Days is the retention age; records older than this are purged.
	// Env: RETENTION_DAYS
	Days int `env:"DAYS" json:"days" yaml:"days"`

	// SweepInterval is how often the worker runs (e.g. "24h").
	// Env: RETENTION_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" json:"sweep_interval" yaml:"sweep_interval"`
}

// Defaults applied by validate when a field is left empty.
const (
	DefaultEncryptionKeyFile = "secret.key"
	DefaultRetentionDays     = 90
	DefaultSweepInterval     = 24 * time.Hour
	DefaultEnvFile           = ".env"
)

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following order (later non-zero values win):
//  1. dotenv file (only fills variables not already set in the environment)
//  2. environment variables
//  3. command-line flags
//  4. JSON or YAML file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
