// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Sentinels rendered in place of values a role may not see.
const (
	NotAnonymized       = "NOT_ANONYMIZED"
	ConfidentialMarker  = "CONFIDENTIAL"
	MaskedContactNoData = "XXX-XXX-XXXX"
)

// PatientView is a role-projected patient row. A nil pointer field means the
// role is not allowed to see that column at all.
type PatientView struct {
	PatientID int64 `json:"patient_id"`

	Name    *string `json:"name,omitempty"`
	Contact *string `json:"contact,omitempty"`

	AnonymizedName    *string `json:"anonymized_name,omitempty"`
	AnonymizedContact *string `json:"anonymized_contact,omitempty"`

	Diagnosis *string   `json:"diagnosis,omitempty"`
	DateAdded time.Time `json:"date_added"`

	// Redacted marks a row whose record failed an integrity check; only the
	// id and date are populated.
	Redacted bool `json:"redacted,omitempty"`
}

// BatchResult reports a bulk operation that does not roll back on failure.
type BatchResult struct {
	Succeeded []int64 `json:"succeeded"`
	Failed    []int64 `json:"failed"`
}

// Attempted returns the number of records the operation tried to process.
func (b BatchResult) Attempted() int {
	return len(b.Succeeded) + len(b.Failed)
}

// WriteResult is returned by patient writes.
type WriteResult struct {
	PatientID int64 `json:"patient_id"`

	// EncryptionSkipped is true when encryption was requested but no key was
	// available, so the diagnosis was stored as plaintext.
	EncryptionSkipped bool `json:"encryption_skipped"`
}
