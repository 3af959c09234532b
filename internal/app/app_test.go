// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

func TestKeyProvider(t *testing.T) {
	_, isPassphrase := KeyProvider(config.App{EncryptionPassphrase: "correct horse", EncryptionSalt: "pepper-salt"}).(*crypto.PassphraseKeyProvider)
	assert.True(t, isPassphrase)

	file, isFile := KeyProvider(config.App{EncryptionKeyFile: "secret.key"}).(*crypto.FileKeyProvider)
	require.True(t, isFile)
	assert.Equal(t, "secret.key", file.Path())
}

func TestNew_SQLite_MigratesAndRuns(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		App: config.App{
			EncryptionEnabled: true,
			EncryptionKeyFile: filepath.Join(dir, "secret.key"),
		},
		Storage:   config.Storage{DB: config.DB{DSN: filepath.Join(dir, "clinic.db")}},
		Retention: config.Retention{Enabled: true, Days: 90, SweepInterval: time.Hour},
	}
	build := models.NewAppBuildInfo("1.2.3", "", "")

	a, err := New(context.Background(), cfg, build, prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Equal(t, "1.2.3", a.Services.AppInfoService.GetAppVersion(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, a.Run(ctx))

	stats, err := a.Services.RetentionService.AgeStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}

func TestSearch_RealNameOnlyFindsForAdmin(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{DSN: filepath.Join(dir, "clinic.db")}},
	}

	a, err := New(context.Background(), cfg, models.NewAppBuildInfo("", "", ""), prometheus.NewRegistry(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	ctx := context.Background()
	patients := a.Services.PatientService
	admin := models.User{UserID: 1, Username: "admin", Role: models.RoleAdmin}

	res, err := patients.Add(ctx, admin, models.PatientInput{Name: "Jane Doe", Contact: "555-000-1234", Diagnosis: "HIV positive"})
	require.NoError(t, err)

	for _, role := range []models.Role{models.RoleDoctor, models.RoleReceptionist} {
		views, err := patients.Search(ctx, models.User{UserID: 2, Username: "staff", Role: role}, "Jane Doe")
		require.NoError(t, err, role)
		assert.Empty(t, views, role)
	}

	views, err := patients.Search(ctx, admin, "Jane Doe")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, res.PatientID, views[0].PatientID)
}
