package service

import (
	"github.com/MKhiriev/go-patient-guard/internal/access"
	"github.com/MKhiriev/go-patient-guard/internal/audit"
	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/metrics"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/internal/validators"
)

type Services struct {
	AuthService      AuthService
	PatientService   PatientService
	ConsentService   ConsentService
	RetentionService RetentionService
	AppInfoService   AppInfoService
}

// NewServices wires every service over one audit writer and one field cipher.
// keys may be nil when encryption is disabled; reads of flagged records then
// pass the stored value through.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, keys crypto.KeyProvider, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	if keys == nil {
		keys = noKey{}
	}
	cipher := crypto.NewFieldCipher(keys)
	auditWriter := audit.NewWriter(storages.AuditRepository, m)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, auditWriter, logger),
		PatientService: NewPatientService(PatientServiceDeps{
			Patients:          storages.PatientRepository,
			Policy:            access.NewPolicy(cipher, m),
			Cipher:            cipher,
			Validator:         validators.NewPatientValidator(),
			Audit:             auditWriter,
			Metrics:           m,
			EncryptionEnabled: cfg.App.EncryptionEnabled,
		}, logger),
		ConsentService:   NewConsentService(storages.ConsentRepository, auditWriter, logger),
		RetentionService: NewRetentionService(storages.PatientRepository, auditWriter, m, logger),
		AppInfoService:   appInfo,
	}, nil
}

// noKey is the key provider used when none is configured.
type noKey struct{}

func (noKey) Key() ([]byte, error) { return nil, crypto.ErrCryptoUnavailable }
