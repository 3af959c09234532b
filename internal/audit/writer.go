// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit appends attributable entries to the append-only audit log.
//
// A failed write is returned to the caller, which must treat the triggering
// operation as failed.
package audit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/metrics"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/models"
)

var ErrEmptyAction = errors.New("audit action is empty")

// Writer records audit entries through an [store.AuditRepository].
type Writer struct {
	repo    store.AuditRepository
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewWriter constructs a Writer. m may be nil.
func NewWriter(repo store.AuditRepository, m *metrics.Metrics) *Writer {
	return &Writer{
		repo:    repo,
		metrics: m,
		now:     time.Now,
	}
}

// Record appends one entry. actor may be nil for unauthenticated events, in
// which case user id and role are stored as null.
func (w *Writer) Record(ctx context.Context, actor *models.User, action Action, details string) error {
	log := logger.FromContext(ctx)

	if action.name == "" {
		return ErrEmptyAction
	}
	if !action.IsKnown() {
		log.Warn().Str("func", "Writer.Record").Str("action", action.String()).Msg("recording unknown audit action")
	}

	entry := models.AuditLogEntry{
		Action:    action.String(),
		Timestamp: w.now().UTC(),
		Details:   details,
	}
	if actor != nil {
		userID := actor.UserID
		role := actor.Role
		entry.UserID = &userID
		entry.Role = &role
	}

	if _, err := w.repo.AddLog(ctx, entry); err != nil {
		w.metrics.IncAuditFailure()
		log.Err(err).Str("func", "Writer.Record").Str("action", action.String()).Msg("failed to write audit entry")
		return fmt.Errorf("audit %s: %w", action, err)
	}

	w.metrics.IncAuditEvent(action.String())
	return nil
}

// List returns up to limit entries, newest first. Zero means no limit.
func (w *Writer) List(ctx context.Context, limit uint64) ([]models.AuditLogEntry, error) {
	entries, err := w.repo.ListLogs(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	return entries, nil
}
