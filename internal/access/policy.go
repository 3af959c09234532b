// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access decides which patient fields each role may see and in
// what form.
//
//	role          name/contact     diagnosis                       anonymized fields
//	admin         raw              decrypted                       shown alongside
//	doctor        hidden           decrypted, CONFIDENTIAL if anon  shown or NOT_ANONYMIZED
//	receptionist  never returned   decrypted                       never returned
//
// Projection is pure apart from metrics. Ambiguous records fail toward
// showing less.
package access

import (
	"fmt"

	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/metrics"
	"github.com/MKhiriev/go-patient-guard/models"
)

// Policy projects patient records into role-specific views.
type Policy struct {
	cipher  crypto.FieldCipher
	metrics *metrics.Metrics
}

// NewPolicy constructs a Policy. cipher may be nil, in which case diagnoses
// are always shown as stored.
func NewPolicy(cipher crypto.FieldCipher, m *metrics.Metrics) *Policy {
	return &Policy{cipher: cipher, metrics: m}
}

// Project returns the view of p for role.
//
// It returns models.ErrPartialAnonymization when exactly one anonymized field
// is set, and ErrUnknownRole for a role outside the table.
func (pl *Policy) Project(role models.Role, p models.Patient, encryptionEnabled bool) (models.PatientView, error) {
	if !role.IsValid() {
		return models.PatientView{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if err := p.CheckAnonymizationInvariant(); err != nil {
		return models.PatientView{}, fmt.Errorf("patient %d: %w", p.PatientID, err)
	}

	view := models.PatientView{
		PatientID: p.PatientID,
		DateAdded: p.DateAdded,
	}

	switch role {
	case models.RoleAdmin:
		view.Name = ptr(p.Name)
		view.Contact = ptr(p.Contact)
		view.AnonymizedName = clone(p.AnonymizedName)
		view.AnonymizedContact = clone(p.AnonymizedContact)
		view.Diagnosis = ptr(pl.diagnosis(p, encryptionEnabled))
	case models.RoleDoctor:
		view.AnonymizedName = orSentinel(p.AnonymizedName)
		view.AnonymizedContact = orSentinel(p.AnonymizedContact)
		if p.IsAnonymized() {
			view.Diagnosis = ptr(models.ConfidentialMarker)
		} else {
			view.Diagnosis = ptr(pl.diagnosis(p, encryptionEnabled))
		}
	case models.RoleReceptionist:
		view.Diagnosis = ptr(pl.diagnosis(p, encryptionEnabled))
	}

	return view, nil
}

// ProjectAll projects every record for role. A record that fails its
// integrity check becomes a Redacted row with only id and date, so one bad
// record never aborts the listing. An unknown role fails the whole call.
func (pl *Policy) ProjectAll(role models.Role, patients []models.Patient, encryptionEnabled bool) ([]models.PatientView, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	views := make([]models.PatientView, 0, len(patients))
	for _, p := range patients {
		view, err := pl.Project(role, p, encryptionEnabled)
		if err != nil {
			pl.metrics.IncRedactedRow()
			view = models.PatientView{PatientID: p.PatientID, DateAdded: p.DateAdded, Redacted: true}
		}
		views = append(views, view)
	}

	return views, nil
}

// diagnosis returns the displayable diagnosis. Decryption is attempted when
// the record is flagged encrypted or encryption is on; anything that does
// not decrypt is shown as stored.
func (pl *Policy) diagnosis(p models.Patient, encryptionEnabled bool) string {
	if pl.cipher == nil || (!p.DiagnosisEncrypted && !encryptionEnabled) {
		return p.Diagnosis
	}

	res := pl.cipher.Decrypt(p.Diagnosis)
	if res.PassedThrough() && p.DiagnosisEncrypted {
		pl.metrics.IncDecryptPassthrough()
	}
	return res.Value
}

func ptr(s string) *string { return &s }

func clone(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr(*s)
}

func orSentinel(s *string) *string {
	if s == nil {
		return ptr(models.NotAnonymized)
	}
	return ptr(*s)
}
