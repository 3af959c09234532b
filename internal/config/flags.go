// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-d database DSN
//	-c/-config config file path (json or yaml)
//	-encrypt enable diagnosis encryption
//	-key-file raw key file path
//	-log-level zerolog level name
//	-retention-days retention age in days
//	-sweep-interval retention sweep interval (e.g. "24h")
//	-retention enable the retention worker
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		databaseDSN    string
		configPath     string
		encrypt        bool
		keyFile        string
		logLevel       string
		retentionDays  int
		sweepInterval  time.Duration
		retentionSweep bool
	)

	fs := flag.NewFlagSet("patient-guard", flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.BoolVar(&encrypt, "encrypt", false, "Encrypt diagnoses")
	fs.StringVar(&keyFile, "key-file", "", "Encryption key file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.IntVar(&retentionDays, "retention-days", 0, "Retention age in days")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Retention sweep interval (e.g., 24h)")
	fs.BoolVar(&retentionSweep, "retention", false, "Run the retention sweep worker")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			EncryptionEnabled: encrypt,
			EncryptionKeyFile: keyFile,
			LogLevel:          logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Retention: Retention{
			Enabled:       retentionSweep,
			Days:          retentionDays,
			SweepInterval: sweepInterval,
		},
		FilePath: configPath,
	}, nil
}
