// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/access"
	"github.com/MKhiriev/go-patient-guard/internal/audit"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/metrics"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/models"
)

// retentionService is the concrete implementation of RetentionService.
// A record is past retention when its date_added is strictly before
// now minus the retention age in days.
type retentionService struct {
	patients store.PatientRepository
	audit    *audit.Writer
	metrics  *metrics.Metrics

	now    func() time.Time
	logger *logger.Logger
}

// NewRetentionService constructs a RetentionService.
func NewRetentionService(patients store.PatientRepository, auditWriter *audit.Writer, m *metrics.Metrics, logger *logger.Logger) RetentionService {
	return &retentionService{
		patients: patients,
		audit:    auditWriter,
		metrics:  m,
		now:      time.Now,
		logger:   logger,
	}
}

// AgeStats counts records added in the last 30, 60 and 90 days.
func (s *retentionService) AgeStats(ctx context.Context) (models.AgeStats, error) {
	stats, err := s.patients.CountByAgeBuckets(ctx, s.now().UTC())
	if err != nil {
		return models.AgeStats{}, fmt.Errorf("count by age: %w", err)
	}
	return stats, nil
}

// RecordsPastRetention lists records older than days, oldest first.
func (s *retentionService) RecordsPastRetention(ctx context.Context, days int) ([]models.Patient, error) {
	cutoff, err := s.cutoff(days)
	if err != nil {
		return nil, err
	}

	patients, err := s.patients.ListOlderThan(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list records past retention: %w", err)
	}
	return patients, nil
}

// PurgePastRetention deletes every record older than days and writes one
// gdpr_data_retention audit entry. A nil actor is the background sweep;
// any other actor needs the retention permission.
func (s *retentionService) PurgePastRetention(ctx context.Context, actor *models.User, days int) (int64, error) {
	log := logger.FromContext(ctx)

	if actor != nil {
		if err := authorize(*actor, access.PermRetention); err != nil {
			return 0, err
		}
	}

	cutoff, err := s.cutoff(days)
	if err != nil {
		return 0, err
	}

	deleted, err := s.patients.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*retentionService.PurgePastRetention").Int("days", days).Msg("failed to purge records past retention")
		return 0, fmt.Errorf("purge records past retention: %w", err)
	}
	s.metrics.AddRetentionPurged(deleted)

	log.Info().Str("func", "*retentionService.PurgePastRetention").Int("days", days).Int64("deleted", deleted).Msg("retention purge finished")

	details := fmt.Sprintf("days=%d deleted=%d", days, deleted)
	if err = s.audit.Record(ctx, actor, audit.ActionGDPRDataRetention, details); err != nil {
		return deleted, err
	}

	return deleted, nil
}

func (s *retentionService) cutoff(days int) (time.Time, error) {
	if days <= 0 {
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidRetentionDays, days)
	}
	return s.now().UTC().AddDate(0, 0, -days), nil
}
