// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Patient is the stored patient record.
//
// Invariants:
//   - AnonymizedName and AnonymizedContact are both nil or both set.
//   - When DiagnosisEncrypted is true, Diagnosis holds ciphertext only.
//   - DateAdded never changes after creation and only feeds retention.
type Patient struct {
	PatientID int64  `json:"patient_id"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Diagnosis string `json:"diagnosis"`

	AnonymizedName    *string `json:"anonymized_name"`
	AnonymizedContact *string `json:"anonymized_contact"`

	DateAdded          time.Time `json:"date_added"`
	DiagnosisEncrypted bool      `json:"diagnosis_encrypted"`
}

// TableName returns the name of the database table
// associated with the Patient model.
func (p Patient) TableName() string {
	return "patients"
}

// IsAnonymized reports whether the record carries anonymized shadow fields.
// Only AnonymizedName is consulted.
func (p Patient) IsAnonymized() bool {
	return p.AnonymizedName != nil
}

// CheckAnonymizationInvariant returns ErrPartialAnonymization when exactly one
// of the two anonymized fields is set.
func (p Patient) CheckAnonymizationInvariant() error {
	if (p.AnonymizedName == nil) != (p.AnonymizedContact == nil) {
		return ErrPartialAnonymization
	}
	return nil
}

// PatientInput is a create or update request as typed by a user.
type PatientInput struct {
	Name      string `json:"name"`
	Contact   string `json:"contact"`
	Diagnosis string `json:"diagnosis"`
}

// AgeStats counts patient records by age. Each bucket includes records with
// date_added strictly after now minus N days.
type AgeStats struct {
	Total  int64 `json:"total"`
	Last30 int64 `json:"last_30"`
	Last60 int64 `json:"last_60"`
	Last90 int64 `json:"last_90"`
}
