package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-patient-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and manages sessions.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.Session, error)
	Logout(ctx context.Context, session models.Session) error
	MigrateLegacyCredentials(ctx context.Context) (int, error)
}

// PatientService runs every patient operation through the access policy and
// the audit log.
type PatientService interface {
	List(ctx context.Context, actor models.User) ([]models.PatientView, error)
	Get(ctx context.Context, actor models.User, patientID int64) (models.PatientView, error)
	Search(ctx context.Context, actor models.User, term string) ([]models.PatientView, error)
	Add(ctx context.Context, actor models.User, input models.PatientInput) (models.WriteResult, error)
	Update(ctx context.Context, actor models.User, patientID int64, input models.PatientInput) (models.WriteResult, error)
	Delete(ctx context.Context, actor models.User, patientID int64) error
	Erase(ctx context.Context, actor models.User, patientID int64) error
	AnonymizeAll(ctx context.Context, actor models.User) (models.BatchResult, error)
	ExportCSV(ctx context.Context, actor models.User, w io.Writer) (int, error)
	AuditLog(ctx context.Context, actor models.User, limit uint64) ([]models.AuditLogEntry, error)
}

// ConsentService tracks GDPR consent. Consent cannot be revoked.
type ConsentService interface {
	HasConsented(ctx context.Context, userID int64, consentType models.ConsentType) (bool, error)
	RecordConsent(ctx context.Context, actor models.User, consentType models.ConsentType) (models.ConsentRecord, error)
	LatestConsent(ctx context.Context, userID int64) (*models.ConsentRecord, error)
}

// RetentionService finds and purges records older than the retention age.
type RetentionService interface {
	AgeStats(ctx context.Context) (models.AgeStats, error)
	RecordsPastRetention(ctx context.Context, days int) ([]models.Patient, error)
	PurgePastRetention(ctx context.Context, actor *models.User, days int) (int64, error)
}

// AppInfoService reports metadata about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
