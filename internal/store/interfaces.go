package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-patient-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository looks up dashboard users and maintains their credentials.
type UserRepository interface {
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	AddUser(ctx context.Context, user models.User) (int64, error)
	UpdateCredential(ctx context.Context, userID int64, credential string) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// PatientRepository persists patient records.
type PatientRepository interface {
	AddPatient(ctx context.Context, patient models.Patient) (int64, error)
	UpdatePatient(ctx context.Context, patient models.Patient) error
	DeletePatient(ctx context.Context, patientID int64) error
	SetAnonymizedFields(ctx context.Context, patientID int64, name, contact string) error
	ErasePatient(ctx context.Context, patientID int64, name, contact string) error
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID int64) (models.Patient, error)
	SearchPatients(ctx context.Context, term string, fields []models.SearchField) ([]models.Patient, error)
	CountByAgeBuckets(ctx context.Context, now time.Time) (models.AgeStats, error)
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]models.Patient, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// AuditRepository appends to and reads the audit log. Entries cannot be
// changed or removed.
type AuditRepository interface {
	AddLog(ctx context.Context, entry models.AuditLogEntry) (int64, error)
	ListLogs(ctx context.Context, limit uint64) ([]models.AuditLogEntry, error)
}

// ConsentRepository appends and queries GDPR consent records.
type ConsentRepository interface {
	AddConsent(ctx context.Context, record models.ConsentRecord) (int64, error)
	HasConsent(ctx context.Context, userID int64, consentType models.ConsentType) (bool, error)
	GetLatestConsent(ctx context.Context, userID int64) (*models.ConsentRecord, error)
}
