// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package privacy holds the one-way field transforms applied to patient
// identifiers: deterministic name tokens and contact masking.
// All functions are pure. A nil input always yields a nil output.
package privacy

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/MKhiriev/go-patient-guard/models"
	"github.com/MKhiriev/go-patient-guard/internal/validators"
)

const (
	anonPrefix      = "ANON_"
	anonTokenLength = 6
	maskPrefix      = "XXX-XXX-"
	maskKeepDigits  = 4
)

// AnonymizeName replaces a name with ANON_ followed by the first six
// uppercase hex characters of its SHA-256 digest. Equal names give equal
// tokens; collisions are not deduplicated.
func AnonymizeName(name *string) *string {
	if name == nil {
		return nil
	}

	sum := sha256.Sum256([]byte(*name))
	token := anonPrefix + strings.ToUpper(hex.EncodeToString(sum[:])[:anonTokenLength])

	return &token
}

// MaskContact keeps only the last four digits of a contact.
// Fewer than four digits give the fixed "XXX-XXX-XXXX".
func MaskContact(contact *string) *string {
	if contact == nil {
		return nil
	}

	digits := validators.Digits(*contact)
	if len(digits) < maskKeepDigits {
		masked := models.MaskedContactNoData
		return &masked
	}

	masked := maskPrefix + digits[len(digits)-maskKeepDigits:]
	return &masked
}

// Anonymize returns the name token and contact mask for a patient as a pair.
// Both results are always set so the record stays consistent.
func Anonymize(p models.Patient) (name string, contact string) {
	return *AnonymizeName(&p.Name), *MaskContact(&p.Contact)
}
