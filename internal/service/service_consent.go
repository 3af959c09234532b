// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/access"
	"github.com/MKhiriev/go-patient-guard/internal/audit"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/models"
)

// consentService is the concrete implementation of ConsentService.
// Consent records are append-only; nothing here updates or removes one.
type consentService struct {
	consents store.ConsentRepository
	audit    *audit.Writer

	now    func() time.Time
	logger *logger.Logger
}

// NewConsentService builds a ConsentService over the consent repository.
// Every recorded consent is audited through auditWriter.
func NewConsentService(consents store.ConsentRepository, auditWriter *audit.Writer, logger *logger.Logger) ConsentService {
	return &consentService{
		consents: consents,
		audit:    auditWriter,
		now:      time.Now,
		logger:   logger,
	}
}

// HasConsented reports whether userID has ever recorded consentType.
// It is a read and writes no audit entry.
func (s *consentService) HasConsented(ctx context.Context, userID int64, consentType models.ConsentType) (bool, error) {
	if strings.TrimSpace(string(consentType)) == "" {
		return false, ErrEmptyConsentType
	}

	ok, err := s.consents.HasConsent(ctx, userID, consentType)
	if err != nil {
		return false, fmt.Errorf("check consent: %w", err)
	}
	return ok, nil
}

// RecordConsent appends a consent record for actor and audits gdpr_consent.
// Recording the same consent twice appends a second record.
func (s *consentService) RecordConsent(ctx context.Context, actor models.User, consentType models.ConsentType) (models.ConsentRecord, error) {
	if strings.TrimSpace(string(consentType)) == "" {
		return models.ConsentRecord{}, ErrEmptyConsentType
	}
	if err := authorize(actor, access.PermConsent); err != nil {
		return models.ConsentRecord{}, err
	}

	record := models.ConsentRecord{
		UserID:      actor.UserID,
		ConsentType: consentType,
		Timestamp:   s.now().UTC(),
	}

	id, err := s.consents.AddConsent(ctx, record)
	if err != nil {
		return models.ConsentRecord{}, fmt.Errorf("record consent: %w", err)
	}
	record.ConsentID = id

	if err = s.audit.Record(ctx, &actor, audit.ActionGDPRConsent, fmt.Sprintf("type=%s", consentType)); err != nil {
		return record, err
	}

	return record, nil
}

// LatestConsent returns the newest consent of any type, or nil when the user
// never consented.
func (s *consentService) LatestConsent(ctx context.Context, userID int64) (*models.ConsentRecord, error) {
	record, err := s.consents.GetLatestConsent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("latest consent: %w", err)
	}
	return record, nil
}
