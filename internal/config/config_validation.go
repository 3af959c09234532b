// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup and fills in defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.EncryptionKeyFile == "" {
		cfg.App.EncryptionKeyFile = DefaultEncryptionKeyFile
	}
	if cfg.App.EncryptionPassphrase != "" && len(cfg.App.EncryptionSalt) < 8 {
		return ErrInvalidAppConfigs
	}

	if cfg.Retention.Days < 0 || cfg.Retention.SweepInterval < 0 {
		return ErrInvalidRetentionConfigs
	}
	if cfg.Retention.Days == 0 {
		cfg.Retention.Days = DefaultRetentionDays
	}
	if cfg.Retention.SweepInterval == 0 {
		cfg.Retention.SweepInterval = DefaultSweepInterval
	}

	return nil
}
