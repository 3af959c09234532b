// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires configuration, storage, services and workers into a
// runnable records daemon, and maps core errors to user-facing messages.
//
// All Msg* constants are human-readable strings safe to show to a dashboard
// user or print from a command. They never include patient data.
package app

import (
	"errors"

	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/service"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/internal/validators"
	"github.com/MKhiriev/go-patient-guard/models"
)

const (
	// MsgInvalidLoginPassword is shown for an unknown user or a wrong
	// password. The two cases are not distinguished.
	MsgInvalidLoginPassword = "invalid username or password"

	// MsgLoginFailed is shown when the credential store could not be read.
	MsgLoginFailed = "login failed, try again later"

	// MsgAccessDenied is shown when the role lacks the permission.
	MsgAccessDenied = "access denied"

	// MsgDataNotFound is shown when the targeted record does not exist.
	MsgDataNotFound = "record not found"

	// MsgRecordIntegrity is shown for a partially anonymized record.
	MsgRecordIntegrity = "record failed an integrity check"

	// MsgEncryptionUnavailable is shown when no encryption key is available.
	MsgEncryptionUnavailable = "encryption unavailable"

	// MsgInvalidRetentionDays is shown for a zero or negative retention age.
	MsgInvalidRetentionDays = "retention days must be positive"

	// MsgConsentRequired is shown when a consent type is missing.
	MsgConsentRequired = "consent type is required"

	// MsgStorageBusy is shown for a retryable storage failure.
	MsgStorageBusy = "storage is busy, try again"

	// MsgInternalError is shown for anything else.
	MsgInternalError = "internal error"
)

// Message returns the user-facing text for err. Validation errors keep their
// field-level text since it names only the field and the rule.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *validators.ValidationError
	var authErr *service.AuthenticationError
	var persistenceErr *store.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return MsgInvalidLoginPassword
	case errors.As(err, &authErr):
		return MsgLoginFailed
	case errors.Is(err, service.ErrForbidden):
		return MsgAccessDenied
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrUserNotFound):
		return MsgDataNotFound
	case errors.Is(err, models.ErrPartialAnonymization):
		return MsgRecordIntegrity
	case errors.Is(err, crypto.ErrCryptoUnavailable):
		return MsgEncryptionUnavailable
	case errors.Is(err, service.ErrInvalidRetentionDays):
		return MsgInvalidRetentionDays
	case errors.Is(err, service.ErrEmptyConsentType):
		return MsgConsentRequired
	case errors.As(err, &persistenceErr) && persistenceErr.Retryable:
		return MsgStorageBusy
	}

	return MsgInternalError
}
