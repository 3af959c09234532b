// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials verifies submitted secrets against stored credential
// representations. Two stored forms coexist: a SHA-256 hex digest, and the
// legacy plaintext secret of accounts that were never migrated.
package credentials

import (
	"crypto/subtle"

	"github.com/MKhiriev/go-patient-guard/internal/utils"
)

// Hash returns the stored representation for a new or migrated secret.
func Hash(plain string) string {
	return utils.SHA256Hex([]byte(plain))
}

// IsHashed reports whether stored is in digest form.
func IsHashed(stored string) bool {
	return utils.IsSHA256Hex(stored)
}

// Verify reports whether plain matches stored. A 64 character hex value is
// compared as a digest; anything else is compared as legacy plaintext.
// Both comparisons are exact and case-sensitive.
func Verify(plain, stored string) bool {
	if IsHashed(stored) {
		return constantTimeEqual(Hash(plain), stored)
	}

	return constantTimeEqual(plain, stored)
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
