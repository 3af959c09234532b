package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/mock"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/models"
)

func newMockStorages(ctrl *gomock.Controller) (*store.Storages, *mock.MockPatientRepository, *mock.MockAuditRepository) {
	patients := mock.NewMockPatientRepository(ctrl)
	audits := mock.NewMockAuditRepository(ctrl)
	return &store.Storages{
		UserRepository:    mock.NewMockUserRepository(ctrl),
		PatientRepository: patients,
		AuditRepository:   audits,
		ConsentRepository: mock.NewMockConsentRepository(ctrl),
	}, patients, audits
}

func TestNewServices_MissingVersion(t *testing.T) {
	storages, _, _ := newMockStorages(gomock.NewController(t))

	_, err := NewServices(storages, config.StructuredConfig{}, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_WiresEverything(t *testing.T) {
	storages, _, _ := newMockStorages(gomock.NewController(t))
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	svcs, err := NewServices(storages, cfg, nil, nil, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, svcs.AuthService)
	assert.NotNil(t, svcs.PatientService)
	assert.NotNil(t, svcs.ConsentService)
	assert.NotNil(t, svcs.RetentionService)
	assert.Equal(t, "1.0.0", svcs.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_EncryptionWithoutKey_SkipsEncryption(t *testing.T) {
	storages, patients, audits := newMockStorages(gomock.NewController(t))
	cfg := config.StructuredConfig{App: config.App{Version: "1.0.0", EncryptionEnabled: true}}
	ctx := context.Background()
	expectAudit(audits)

	svcs, err := NewServices(storages, cfg, nil, nil, logger.Nop())
	require.NoError(t, err)

	patients.EXPECT().AddPatient(ctx, gomock.Any()).Return(int64(1), nil)

	res, err := svcs.PatientService.Add(ctx, adminUser, models.PatientInput{
		Name: "John Doe", Contact: "5551234567", Diagnosis: "Flu",
	})
	require.NoError(t, err)
	assert.True(t, res.EncryptionSkipped)
}
