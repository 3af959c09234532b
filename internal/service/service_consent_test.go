package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-patient-guard/internal/audit"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/mock"
	"github.com/MKhiriev/go-patient-guard/models"
)

func newConsentFixture(t *testing.T) (*consentService, *mock.MockConsentRepository, *mock.MockAuditRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	consents := mock.NewMockConsentRepository(ctrl)
	audits := mock.NewMockAuditRepository(ctrl)

	svc := NewConsentService(consents, audit.NewWriter(audits, nil), logger.Nop()).(*consentService)
	svc.now = func() time.Time { return testNow }
	return svc, consents, audits
}

func TestRecordConsent_AppendsAndAudits(t *testing.T) {
	svc, consents, audits := newConsentFixture(t)
	ctx := context.Background()
	captured := expectAudit(audits)

	consents.EXPECT().AddConsent(ctx, models.ConsentRecord{
		UserID:      doctorUser.UserID,
		ConsentType: models.ConsentDataProcessing,
		Timestamp:   testNow,
	}).Return(int64(11), nil)

	rec, err := svc.RecordConsent(ctx, doctorUser, models.ConsentDataProcessing)
	require.NoError(t, err)

	assert.Equal(t, int64(11), rec.ConsentID)
	assert.Equal(t, testNow, rec.Timestamp)
	assert.Equal(t, []string{"gdpr_consent"}, captured.actions())
	assert.Equal(t, "type=data_processing", captured.last().Details)
	assertActor(t, captured.last(), doctorUser)
}

func TestRecordConsent_EmptyType(t *testing.T) {
	svc, _, _ := newConsentFixture(t)

	_, err := svc.RecordConsent(context.Background(), adminUser, "  ")
	assert.ErrorIs(t, err, ErrEmptyConsentType)
}

func TestRecordConsent_StoreError_NotAudited(t *testing.T) {
	svc, consents, _ := newConsentFixture(t)
	ctx := context.Background()
	storeErr := errors.New("constraint")

	consents.EXPECT().AddConsent(ctx, gomock.Any()).Return(int64(0), storeErr)

	_, err := svc.RecordConsent(ctx, adminUser, models.ConsentDataProcessing)
	assert.ErrorIs(t, err, storeErr)
}

func TestHasConsented(t *testing.T) {
	svc, consents, _ := newConsentFixture(t)
	ctx := context.Background()

	consents.EXPECT().HasConsent(ctx, int64(2), models.ConsentDataProcessing).Return(false, nil)
	consents.EXPECT().HasConsent(ctx, int64(3), models.ConsentDataProcessing).Return(true, nil)

	ok, err := svc.HasConsented(ctx, 2, models.ConsentDataProcessing)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasConsented(ctx, 3, models.ConsentDataProcessing)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.HasConsented(ctx, 3, "")
	assert.ErrorIs(t, err, ErrEmptyConsentType)
}

func TestLatestConsent(t *testing.T) {
	svc, consents, _ := newConsentFixture(t)
	ctx := context.Background()

	want := &models.ConsentRecord{ConsentID: 4, UserID: 1, ConsentType: models.ConsentDataProcessing, Timestamp: testNow}
	consents.EXPECT().GetLatestConsent(ctx, int64(1)).Return(want, nil)
	consents.EXPECT().GetLatestConsent(ctx, int64(9)).Return(nil, nil)

	got, err := svc.LatestConsent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = svc.LatestConsent(ctx, 9)
	require.NoError(t, err)
	assert.Nil(t, got)
}
