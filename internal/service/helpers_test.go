package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-patient-guard/internal/access"
	"github.com/MKhiriev/go-patient-guard/internal/audit"
	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/metrics"
	"github.com/MKhiriev/go-patient-guard/internal/mock"
	"github.com/MKhiriev/go-patient-guard/internal/validators"
	"github.com/MKhiriev/go-patient-guard/models"
)

var (
	testNow = time.Date(2026, 7, 1, 9, 30, 0, 0, time.UTC)

	adminUser        = models.User{UserID: 1, Username: "admin", Role: models.RoleAdmin}
	doctorUser       = models.User{UserID: 2, Username: "dr_bob", Role: models.RoleDoctor}
	receptionistUser = models.User{UserID: 3, Username: "alice_recep", Role: models.RoleReceptionist}
)

// capturedAudit collects every entry passed to AddLog.
type capturedAudit struct {
	entries []models.AuditLogEntry
}

func (c *capturedAudit) actions() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Action)
	}
	return out
}

func (c *capturedAudit) last() models.AuditLogEntry {
	return c.entries[len(c.entries)-1]
}

// expectAudit makes repo accept any number of AddLog calls and record them.
func expectAudit(repo *mock.MockAuditRepository) *capturedAudit {
	c := &capturedAudit{}
	repo.EXPECT().AddLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.AuditLogEntry) (int64, error) {
			c.entries = append(c.entries, e)
			return int64(len(c.entries)), nil
		}).AnyTimes()
	return c
}

func assertActor(t *testing.T, e models.AuditLogEntry, u models.User) {
	t.Helper()
	if assert.NotNil(t, e.UserID) && assert.NotNil(t, e.Role) {
		assert.Equal(t, u.UserID, *e.UserID)
		assert.Equal(t, u.Role, *e.Role)
	}
}

type patientFixture struct {
	svc      *patientService
	patients *mock.MockPatientRepository
	audits   *mock.MockAuditRepository
	keys     *mock.MockKeyProvider
	metrics  *metrics.Metrics
}

func newPatientFixture(t *testing.T, encryptionEnabled bool) *patientFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &patientFixture{
		patients: mock.NewMockPatientRepository(ctrl),
		audits:   mock.NewMockAuditRepository(ctrl),
		keys:     mock.NewMockKeyProvider(ctrl),
		metrics:  metrics.New(prometheus.NewRegistry()),
	}

	cipher := crypto.NewFieldCipher(f.keys)
	svc := NewPatientService(PatientServiceDeps{
		Patients:          f.patients,
		Policy:            access.NewPolicy(cipher, f.metrics),
		Cipher:            cipher,
		Validator:         validators.NewPatientValidator(),
		Audit:             audit.NewWriter(f.audits, f.metrics),
		Metrics:           f.metrics,
		EncryptionEnabled: encryptionEnabled,
	}, logger.Nop())

	f.svc = svc.(*patientService)
	f.svc.now = func() time.Time { return testNow }
	return f
}

// withKey makes the key provider return a fixed valid key.
func (f *patientFixture) withKey() {
	f.keys.EXPECT().Key().Return(bytes.Repeat([]byte{0x42}, crypto.KeySize), nil).AnyTimes()
}

func strPtr(s string) *string { return &s }
