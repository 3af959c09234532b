// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

// patientRepository is the SQL implementation of [PatientRepository] over
// the "patients" table.
//
// Log lines carry patient ids only; names, contacts and diagnoses stay out
// of the log.
type patientRepository struct {
	*DB
	logger *logger.Logger
}

// NewPatientRepository constructs a [PatientRepository] backed by db.
func NewPatientRepository(db *DB, logger *logger.Logger) PatientRepository {
	return &patientRepository{
		DB:     db,
		logger: logger,
	}
}

// AddPatient inserts p and returns the new id. DateAdded must be set by the
// caller.
func (r *patientRepository) AddPatient(ctx context.Context, p models.Patient) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildAddPatientQuery(p)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.withRetry(ctx, "add patient", func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).Str("func", "patientRepository.AddPatient").Msg("failed to add patient")
		return 0, err
	}

	return id, nil
}

// UpdatePatient rewrites name, contact, diagnosis and the encryption flag.
// DateAdded and the anonymized fields are left untouched.
func (r *patientRepository) UpdatePatient(ctx context.Context, p models.Patient) error {
	query, args, err := r.buildUpdatePatientQuery(p)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "update patient", p.PatientID, query, args)
}

// DeletePatient removes one record.
func (r *patientRepository) DeletePatient(ctx context.Context, patientID int64) error {
	query, args, err := r.buildDeletePatientQuery(patientID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "delete patient", patientID, query, args)
}

// SetAnonymizedFields writes both anonymized fields in a single statement.
func (r *patientRepository) SetAnonymizedFields(ctx context.Context, patientID int64, name, contact string) error {
	query, args, err := r.buildSetAnonymizedFieldsQuery(patientID, name, contact)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "set anonymized fields", patientID, query, args)
}

// ErasePatient replaces the raw name and contact with the given anonymized
// values and stores the same values in the anonymized fields.
func (r *patientRepository) ErasePatient(ctx context.Context, patientID int64, name, contact string) error {
	query, args, err := r.buildErasePatientQuery(patientID, name, contact)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffecting(ctx, "erase patient", patientID, query, args)
}

// ListPatients returns every record ordered by id.
func (r *patientRepository) ListPatients(ctx context.Context) ([]models.Patient, error) {
	query, args, err := r.buildListPatientsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPatients(ctx, "list patients", query, args)
}

// GetPatient returns one record or [ErrNotFound].
func (r *patientRepository) GetPatient(ctx context.Context, patientID int64) (models.Patient, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildGetPatientQuery(patientID)
	if err != nil {
		return models.Patient{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Patient
	err = r.withRetry(ctx, "get patient", func() error {
		scanErr := scanPatient(r.QueryRowContext(ctx, query, args...), &p)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return errDomain(ErrNotFound)
		}
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "patientRepository.GetPatient").Int64("patient_id", patientID).Msg("failed to get patient")
		}
		return models.Patient{}, err
	}

	return p, nil
}

// SearchPatients returns records where any of fields contains term.
func (r *patientRepository) SearchPatients(ctx context.Context, term string, fields []models.SearchField) ([]models.Patient, error) {
	query, args, err := r.buildSearchPatientsQuery(term, fields)
	if err != nil {
		if errors.Is(err, ErrNoSearchFields) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPatients(ctx, "search patients", query, args)
}

// CountByAgeBuckets counts records relative to now.
func (r *patientRepository) CountByAgeBuckets(ctx context.Context, now time.Time) (models.AgeStats, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCountByAgeBucketsQuery(now)
	if err != nil {
		return models.AgeStats{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stats models.AgeStats
	err = r.withRetry(ctx, "count by age", func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&stats.Total, &stats.Last30, &stats.Last60, &stats.Last90)
	})
	if err != nil {
		log.Err(err).Str("func", "patientRepository.CountByAgeBuckets").Msg("failed to count patients")
		return models.AgeStats{}, err
	}

	return stats, nil
}

// ListOlderThan returns records added strictly before cutoff, oldest first.
func (r *patientRepository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]models.Patient, error) {
	if cutoff.IsZero() {
		return nil, ErrInvalidCutoff
	}

	query, args, err := r.buildListOlderThanQuery(cutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryPatients(ctx, "list older than", query, args)
}

// DeleteOlderThan removes records added strictly before cutoff and returns
// how many were deleted.
func (r *patientRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	if cutoff.IsZero() {
		return 0, ErrInvalidCutoff
	}

	query, args, err := r.buildDeleteOlderThanQuery(cutoff)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var deleted int64
	err = r.withRetry(ctx, "delete older than", func() error {
		res, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		n, affErr := res.RowsAffected()
		if affErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		deleted = n
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "patientRepository.DeleteOlderThan").Time("cutoff", cutoff).Msg("failed to delete old patients")
		return 0, err
	}

	return deleted, nil
}

func (r *patientRepository) execAffecting(ctx context.Context, op string, patientID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	err := r.withRetry(ctx, op, func() error {
		res, execErr := r.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return requireAffected(res, ErrNotFound)
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "patientRepository.execAffecting").Str("op", op).Int64("patient_id", patientID).Msg("statement failed")
		}
		return err
	}

	return nil
}

func (r *patientRepository) queryPatients(ctx context.Context, op, query string, args []any) ([]models.Patient, error) {
	log := logger.FromContext(ctx)

	var patients []models.Patient
	err := r.withRetry(ctx, op, func() error {
		rows, queryErr := r.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		patients = make([]models.Patient, 0, 50)
		for rows.Next() {
			var p models.Patient
			if scanErr := scanPatient(rows, &p); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			patients = append(patients, p)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "patientRepository.queryPatients").Str("op", op).Msg("failed to query patients")
		return nil, err
	}

	return patients, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPatient(row rowScanner, p *models.Patient) error {
	var anonName, anonContact sql.NullString
	err := row.Scan(
		&p.PatientID,
		&p.Name,
		&p.Contact,
		&p.Diagnosis,
		&anonName,
		&anonContact,
		&p.DateAdded,
		&p.DiagnosisEncrypted,
	)
	if err != nil {
		return err
	}

	p.AnonymizedName = nullableString(anonName)
	p.AnonymizedContact = nullableString(anonContact)
	p.DateAdded = p.DateAdded.UTC()
	return nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
