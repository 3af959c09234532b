package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/service"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/internal/validators"
	"github.com/MKhiriev/go-patient-guard/models"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", &validators.ValidationError{Field: "contact", Message: "must contain 10 to 15 digits"}, "invalid contact: must contain 10 to 15 digits"},
		{"bad credentials", service.ErrInvalidCredentials, MsgInvalidLoginPassword},
		{"lookup failure", &service.AuthenticationError{Username: "admin", Err: errors.New("db down")}, MsgLoginFailed},
		{"forbidden", fmt.Errorf("%w: doctor cannot export_csv", service.ErrForbidden), MsgAccessDenied},
		{"not found", fmt.Errorf("get patient 3: %w", store.ErrNotFound), MsgDataNotFound},
		{"partial anonymization", fmt.Errorf("patient 3: %w", models.ErrPartialAnonymization), MsgRecordIntegrity},
		{"crypto", crypto.ErrCryptoUnavailable, MsgEncryptionUnavailable},
		{"retention days", service.ErrInvalidRetentionDays, MsgInvalidRetentionDays},
		{"consent type", service.ErrEmptyConsentType, MsgConsentRequired},
		{"busy", &store.PersistenceError{Op: "AddPatient", Retryable: true, Err: errors.New("database is locked")}, MsgStorageBusy},
		{"permanent storage", &store.PersistenceError{Op: "AddPatient", Err: errors.New("syntax")}, MsgInternalError},
		{"other", errors.New("boom"), MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestMessage_NeverLeaksWrappedText(t *testing.T) {
	err := fmt.Errorf("add patient John Doe: %w", errors.New("constraint failed"))

	assert.Equal(t, MsgInternalError, Message(err))
}
