// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/access"
	"github.com/MKhiriev/go-patient-guard/internal/audit"
	"github.com/MKhiriev/go-patient-guard/internal/crypto"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/metrics"
	"github.com/MKhiriev/go-patient-guard/internal/privacy"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/internal/validators"
	"github.com/MKhiriev/go-patient-guard/models"
)

// encryptionUnavailableNote is appended to audit details when a write fell
// back to plaintext.
const encryptionUnavailableNote = "encryption=unavailable"

var exportHeader = []string{
	"patient_id", "name", "contact", "diagnosis",
	"anonymized_name", "anonymized_contact", "date_added", "diagnosis_encrypted",
}

// patientService is the concrete implementation of PatientService.
//
// Every read is projected through the access policy for the actor's role and
// every sensitive operation writes one audit entry. An audit failure fails
// the operation.
type patientService struct {
	patients  store.PatientRepository
	policy    *access.Policy
	cipher    crypto.FieldCipher
	validator validators.Validator
	audit     *audit.Writer
	metrics   *metrics.Metrics

	encryptionEnabled bool

	now    func() time.Time
	logger *logger.Logger
}

// PatientServiceDeps groups the collaborators of NewPatientService.
type PatientServiceDeps struct {
	Patients          store.PatientRepository
	Policy            *access.Policy
	Cipher            crypto.FieldCipher
	Validator         validators.Validator
	Audit             *audit.Writer
	Metrics           *metrics.Metrics
	EncryptionEnabled bool
}

// NewPatientService constructs a PatientService.
func NewPatientService(deps PatientServiceDeps, logger *logger.Logger) PatientService {
	return &patientService{
		patients:          deps.Patients,
		policy:            deps.Policy,
		cipher:            deps.Cipher,
		validator:         deps.Validator,
		audit:             deps.Audit,
		metrics:           deps.Metrics,
		encryptionEnabled: deps.EncryptionEnabled,
		now:               time.Now,
		logger:            logger,
	}
}

// List returns every record projected for the actor's role and audits
// view_patients_<role>.
func (s *patientService) List(ctx context.Context, actor models.User) ([]models.PatientView, error) {
	if err := authorize(actor, access.PermListPatients); err != nil {
		return nil, err
	}

	patients, err := s.patients.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	views, err := s.policy.ProjectAll(actor.Role, patients, s.encryptionEnabled)
	if err != nil {
		return nil, err
	}

	if err = s.audit.Record(ctx, &actor, audit.ViewPatients(actor.Role), ""); err != nil {
		return nil, err
	}

	return views, nil
}

// Get returns one record projected for the actor's role.
func (s *patientService) Get(ctx context.Context, actor models.User, patientID int64) (models.PatientView, error) {
	if err := authorize(actor, access.PermViewPatient); err != nil {
		return models.PatientView{}, err
	}

	patient, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return models.PatientView{}, fmt.Errorf("get patient %d: %w", patientID, err)
	}

	view, err := s.policy.Project(actor.Role, patient, s.encryptionEnabled)
	if err != nil {
		return models.PatientView{}, err
	}

	if err = s.audit.Record(ctx, &actor, audit.ViewPatients(actor.Role), patientDetails(patientID)); err != nil {
		return models.PatientView{}, err
	}

	return view, nil
}

// Search matches term against the columns the actor's role may search and
// projects the results. Only admins match real names. The term is not
// written to the audit log since it may be a name.
func (s *patientService) Search(ctx context.Context, actor models.User, term string) ([]models.PatientView, error) {
	if err := authorize(actor, access.PermSearchPatients); err != nil {
		return nil, err
	}

	patients, err := s.patients.SearchPatients(ctx, term, access.SearchFields(actor.Role))
	if err != nil {
		return nil, fmt.Errorf("search patients: %w", err)
	}

	views, err := s.policy.ProjectAll(actor.Role, patients, s.encryptionEnabled)
	if err != nil {
		return nil, err
	}

	if err = s.audit.Record(ctx, &actor, audit.ActionSearchPatients, fmt.Sprintf("results=%d", len(views))); err != nil {
		return nil, err
	}

	return views, nil
}

// Add validates and stores a new record. With encryption on, the diagnosis
// is encrypted; when no key is available it is stored as plaintext and the
// result and audit entry say so.
func (s *patientService) Add(ctx context.Context, actor models.User, input models.PatientInput) (models.WriteResult, error) {
	log := logger.FromContext(ctx)

	if err := authorize(actor, access.PermAddPatient); err != nil {
		return models.WriteResult{}, err
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.WriteResult{}, err
	}

	diagnosis, encrypted, skipped, err := s.sealDiagnosis(input.Diagnosis)
	if err != nil {
		return models.WriteResult{}, err
	}

	patient := models.Patient{
		Name:               input.Name,
		Contact:            input.Contact,
		Diagnosis:          diagnosis,
		DateAdded:          s.now().UTC(),
		DiagnosisEncrypted: encrypted,
	}

	id, err := s.patients.AddPatient(ctx, patient)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("add patient: %w", err)
	}
	log.Debug().Str("func", "*patientService.Add").Int64("patient_id", id).Bool("encrypted", encrypted).Msg("patient added")

	result := models.WriteResult{PatientID: id, EncryptionSkipped: skipped}
	if err = s.audit.Record(ctx, &actor, audit.ActionAddPatient, writeDetails(id, skipped)); err != nil {
		return result, err
	}

	return result, nil
}

// Update replaces name, contact and diagnosis of an existing record.
func (s *patientService) Update(ctx context.Context, actor models.User, patientID int64, input models.PatientInput) (models.WriteResult, error) {
	if err := authorize(actor, access.PermUpdatePatient); err != nil {
		return models.WriteResult{}, err
	}
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.WriteResult{}, err
	}

	diagnosis, encrypted, skipped, err := s.sealDiagnosis(input.Diagnosis)
	if err != nil {
		return models.WriteResult{}, err
	}

	err = s.patients.UpdatePatient(ctx, models.Patient{
		PatientID:          patientID,
		Name:               input.Name,
		Contact:            input.Contact,
		Diagnosis:          diagnosis,
		DiagnosisEncrypted: encrypted,
	})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("update patient %d: %w", patientID, err)
	}

	result := models.WriteResult{PatientID: patientID, EncryptionSkipped: skipped}
	if err = s.audit.Record(ctx, &actor, audit.ActionUpdatePatient, writeDetails(patientID, skipped)); err != nil {
		return result, err
	}

	return result, nil
}

// Delete removes one record.
func (s *patientService) Delete(ctx context.Context, actor models.User, patientID int64) error {
	if err := authorize(actor, access.PermDeletePatient); err != nil {
		return err
	}

	if err := s.patients.DeletePatient(ctx, patientID); err != nil {
		return fmt.Errorf("delete patient %d: %w", patientID, err)
	}

	return s.audit.Record(ctx, &actor, audit.ActionDeletePatient, patientDetails(patientID))
}

// Erase overwrites the raw name and contact with their anonymized forms, so
// unlike AnonymizeAll the identifiers are gone from storage. An already
// anonymized record keeps its existing tokens.
func (s *patientService) Erase(ctx context.Context, actor models.User, patientID int64) error {
	if err := authorize(actor, access.PermErasePatient); err != nil {
		return err
	}

	patient, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return fmt.Errorf("get patient %d: %w", patientID, err)
	}
	if err = patient.CheckAnonymizationInvariant(); err != nil {
		return fmt.Errorf("patient %d: %w", patientID, err)
	}

	name, contact := privacy.Anonymize(patient)
	if patient.IsAnonymized() {
		name, contact = *patient.AnonymizedName, *patient.AnonymizedContact
	}

	if err = s.patients.ErasePatient(ctx, patientID, name, contact); err != nil {
		return fmt.Errorf("erase patient %d: %w", patientID, err)
	}

	return s.audit.Record(ctx, &actor, audit.ActionErasePatient, patientDetails(patientID))
}

// AnonymizeAll sets both anonymized fields on every record, one write per
// record. It does not stop or roll back on a failed record; the result lists
// which ids succeeded and which failed. One anonymize_all entry is audited
// with the counts.
func (s *patientService) AnonymizeAll(ctx context.Context, actor models.User) (models.BatchResult, error) {
	log := logger.FromContext(ctx)

	if err := authorize(actor, access.PermAnonymize); err != nil {
		return models.BatchResult{}, err
	}

	patients, err := s.patients.ListPatients(ctx)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("list patients: %w", err)
	}

	result := models.BatchResult{
		Succeeded: make([]int64, 0, len(patients)),
		Failed:    make([]int64, 0),
	}
	for _, p := range patients {
		if ctx.Err() != nil {
			result.Failed = append(result.Failed, p.PatientID)
			continue
		}
		if isErased(p) {
			result.Succeeded = append(result.Succeeded, p.PatientID)
			continue
		}

		name, contact := privacy.Anonymize(p)
		if err = s.patients.SetAnonymizedFields(ctx, p.PatientID, name, contact); err != nil {
			log.Err(err).Str("func", "*patientService.AnonymizeAll").Int64("patient_id", p.PatientID).Msg("failed to anonymize patient")
			result.Failed = append(result.Failed, p.PatientID)
			continue
		}
		result.Succeeded = append(result.Succeeded, p.PatientID)
	}

	s.metrics.AddAnonymizeFailures(len(result.Failed))

	details := fmt.Sprintf("attempted=%d succeeded=%d failed=%d", result.Attempted(), len(result.Succeeded), len(result.Failed))
	if err = s.audit.Record(ctx, &actor, audit.ActionAnonymizeAll, details); err != nil {
		return result, err
	}

	return result, nil
}

// ExportCSV writes every stored record to w as CSV and returns the number of
// data rows. Values are written as stored, so encrypted diagnoses stay
// encrypted and the flag column says which ones are.
func (s *patientService) ExportCSV(ctx context.Context, actor models.User, w io.Writer) (int, error) {
	if err := authorize(actor, access.PermExport); err != nil {
		return 0, err
	}

	patients, err := s.patients.ListPatients(ctx)
	if err != nil {
		return 0, fmt.Errorf("list patients: %w", err)
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range patients {
		if err = cw.Write(exportRow(p)); err != nil {
			return 0, fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}

	if err = s.audit.Record(ctx, &actor, audit.ActionExportCSV, fmt.Sprintf("rows=%d", len(patients))); err != nil {
		return len(patients), err
	}

	return len(patients), nil
}

// AuditLog returns the newest audit entries for the admin integrity view.
func (s *patientService) AuditLog(ctx context.Context, actor models.User, limit uint64) ([]models.AuditLogEntry, error) {
	if err := authorize(actor, access.PermViewAuditLog); err != nil {
		return nil, err
	}

	entries, err := s.audit.List(ctx, limit)
	if err != nil {
		return nil, err
	}

	if err = s.audit.Record(ctx, &actor, audit.ActionViewAuditLog, ""); err != nil {
		return nil, err
	}

	return entries, nil
}

// sealDiagnosis encrypts diagnosis when encryption is on. skipped is true
// when encryption was wanted but no key was available.
func (s *patientService) sealDiagnosis(diagnosis string) (value string, encrypted, skipped bool, err error) {
	if !s.encryptionEnabled || s.cipher == nil {
		return diagnosis, false, false, nil
	}

	token, err := s.cipher.Encrypt(diagnosis)
	switch {
	case errors.Is(err, crypto.ErrCryptoUnavailable):
		s.metrics.IncEncryptionSkipped()
		s.logger.Warn().Err(err).Str("func", "*patientService.sealDiagnosis").Msg("encryption unavailable, storing diagnosis as plaintext")
		return diagnosis, false, true, nil
	case err != nil:
		return "", false, false, fmt.Errorf("encrypt diagnosis: %w", err)
	}

	return token, true, false, nil
}

func authorize(actor models.User, perm access.Permission) error {
	if !access.Can(actor.Role, perm) {
		return fmt.Errorf("%w: %s cannot %s", ErrForbidden, actor.Role, perm)
	}
	return nil
}

// isErased reports whether Erase already replaced the raw name.
func isErased(p models.Patient) bool {
	return p.IsAnonymized() && p.Name == *p.AnonymizedName
}

func patientDetails(id int64) string {
	return fmt.Sprintf("patient_id=%d", id)
}

func writeDetails(id int64, encryptionSkipped bool) string {
	if encryptionSkipped {
		return patientDetails(id) + " " + encryptionUnavailableNote
	}
	return patientDetails(id)
}

func exportRow(p models.Patient) []string {
	return []string{
		strconv.FormatInt(p.PatientID, 10),
		p.Name,
		p.Contact,
		p.Diagnosis,
		deref(p.AnonymizedName),
		deref(p.AnonymizedContact),
		p.DateAdded.UTC().Format(time.RFC3339),
		strconv.FormatBool(p.DiagnosisEncrypted),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
