package store

import "github.com/MKhiriev/go-patient-guard/internal/logger"

// Storages bundles every repository backed by one DB.
type Storages struct {
	UserRepository    UserRepository
	PatientRepository PatientRepository
	AuditRepository   AuditRepository
	ConsentRepository ConsentRepository
}

// NewStorages constructs all repositories over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		PatientRepository: NewPatientRepository(db, log),
		AuditRepository:   NewAuditRepository(db, log),
		ConsentRepository: NewConsentRepository(db, log),
	}
}
