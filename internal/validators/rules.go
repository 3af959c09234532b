// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Length and digit-count limits for patient fields.
const (
	NameMinLength      = 2
	NameMaxLength      = 100
	ContactMinDigits   = 10
	ContactMaxDigits   = 15
	DiagnosisMinLength = 3
	DiagnosisMaxLength = 500
)

// ValidateName checks a patient name. Allowed characters are letters,
// spaces, dot, hyphen and apostrophe. Length is counted in characters.
func ValidateName(name string) (bool, string) {
	if strings.TrimSpace(name) == "" {
		return false, "Name is required"
	}

	n := utf8.RuneCountInString(name)
	if n < NameMinLength || n > NameMaxLength {
		return false, fmt.Sprintf("Name must be between %d and %d characters", NameMinLength, NameMaxLength)
	}

	for _, r := range name {
		if !isNameRune(r) {
			return false, "Name can only contain letters, spaces, dots, hyphens and apostrophes"
		}
	}

	return true, ""
}

// ValidateContact checks a phone number. Formatting characters are ignored;
// only the digit count matters.
func ValidateContact(contact string) (bool, string) {
	if strings.TrimSpace(contact) == "" {
		return false, "Contact is required"
	}

	n := len(Digits(contact))
	if n < ContactMinDigits || n > ContactMaxDigits {
		return false, fmt.Sprintf("Contact must contain between %d and %d digits", ContactMinDigits, ContactMaxDigits)
	}

	return true, ""
}

// ValidateDiagnosis checks the free-text diagnosis length.
func ValidateDiagnosis(diagnosis string) (bool, string) {
	if strings.TrimSpace(diagnosis) == "" {
		return false, "Diagnosis is required"
	}

	n := utf8.RuneCountInString(diagnosis)
	if n < DiagnosisMinLength || n > DiagnosisMaxLength {
		return false, fmt.Sprintf("Diagnosis must be between %d and %d characters", DiagnosisMinLength, DiagnosisMaxLength)
	}

	return true, ""
}

// Digits returns only the ASCII digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isNameRune(r rune) bool {
	switch r {
	case ' ', '.', '-', '\'':
		return true
	}
	return unicode.IsLetter(r)
}
