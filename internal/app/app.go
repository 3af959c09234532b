package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/metrics"
	"github.com/MKhiriev/go-patient-guard/internal/service"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/internal/workers"
	"github.com/MKhiriev/go-patient-guard/models"
)

// App is an opened records store with its services and background workers.
type App struct {
	Services *service.Services

	db      *store.DB
	workers *workers.Workers
	logger  *logger.Logger
}

// New connects to the configured database, applies migrations and wires the
// services. reg receives the metrics; pass a fresh registry in tests.
func New(ctx context.Context, cfg *config.StructuredConfig, build models.AppBuildInfo, reg prometheus.Registerer, log *logger.Logger) (*App, error) {
	if cfg.App.Version == "" {
		cfg.App.Version = build.BuildVersion()
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	services, err := service.NewServices(store.NewStorages(db, log), *cfg, KeyProvider(cfg.App), metrics.New(reg), log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create services: %w", err)
	}

	var jobs []workers.Worker
	if w := workers.NewRetentionWorker(services.RetentionService, cfg.Retention, log); w != nil {
		jobs = append(jobs, w)
	}

	return &App{
		Services: services,
		db:       db,
		workers:  workers.New(jobs...),
		logger:   log,
	}, nil
}

// KeyProvider picks the key source: a passphrase when one is configured,
// the key file otherwise.
func KeyProvider(cfg config.App) crypto.KeyProvider {
	if cfg.EncryptionPassphrase != "" {
		return crypto.NewPassphraseKeyProvider(cfg.EncryptionPassphrase, []byte(cfg.EncryptionSalt))
	}
	return crypto.NewFileKeyProvider(cfg.EncryptionKeyFile)
}

// Run blocks running the background workers until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "*App.Run").
		Str("dialect", string(a.db.Dialect())).
		Int("workers", a.workers.Len()).
		Msg("records daemon running")

	if err := a.workers.Run(ctx); err != nil {
		return fmt.Errorf("workers: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.db.Close()
}
