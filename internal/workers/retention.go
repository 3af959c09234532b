// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/service"
)

// RetentionWorker purges records past the retention age on a ticker.
// Sweeps run as the system, so their audit entries carry no user.
type RetentionWorker struct {
	retention service.RetentionService
	days      int
	interval  time.Duration

	logger *logger.Logger
}

// NewRetentionWorker returns a worker for cfg, or nil when the sweep is
// disabled. Zero values fall back to the config defaults.
func NewRetentionWorker(retention service.RetentionService, cfg config.Retention, logger *logger.Logger) *RetentionWorker {
	if !cfg.Enabled {
		return nil
	}

	days, interval := cfg.Days, cfg.SweepInterval
	if days <= 0 {
		days = config.DefaultRetentionDays
	}
	if interval <= 0 {
		interval = config.DefaultSweepInterval
	}

	return &RetentionWorker{
		retention: retention,
		days:      days,
		interval:  interval,
		logger:    logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
// A failed sweep is logged and retried on the next tick.
func (w *RetentionWorker) Run(ctx context.Context) error {
	w.logger.Info().Str("func", "*RetentionWorker.Run").
		Int("days", w.days).Dur("interval", w.interval).Msg("retention worker started")

	w.sweep(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("func", "*RetentionWorker.Run").Msg("retention worker stopped")
			return nil
		case <-t.C:
			w.sweep(ctx)
		}
	}
}

func (w *RetentionWorker) sweep(ctx context.Context) {
	deleted, err := w.retention.PurgePastRetention(ctx, nil, w.days)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Err(err).Str("func", "*RetentionWorker.sweep").Int("days", w.days).Msg("retention sweep failed")
		return
	}
	w.logger.Debug().Str("func", "*RetentionWorker.sweep").Int64("deleted", deleted).Msg("retention sweep done")
}
