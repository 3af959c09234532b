package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

type consentRepository struct {
	*DB
	logger *logger.Logger
}

// NewConsentRepository constructs a [ConsentRepository] over the
// "consent_log" table.
func NewConsentRepository(db *DB, logger *logger.Logger) ConsentRepository {
	return &consentRepository{
		DB:     db,
		logger: logger,
	}
}

// AddConsent appends a consent record and returns its id.
func (r *consentRepository) AddConsent(ctx context.Context, record models.ConsentRecord) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildAddConsentQuery(record)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.withRetry(ctx, "add consent", func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).Str("func", "consentRepository.AddConsent").Int64("user_id", record.UserID).Msg("failed to add consent")
		return 0, err
	}

	return id, nil
}

// HasConsent reports whether at least one record exists for the pair.
func (r *consentRepository) HasConsent(ctx context.Context, userID int64, consentType models.ConsentType) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildHasConsentQuery(userID, consentType)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = r.withRetry(ctx, "has consent", func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "consentRepository.HasConsent").Int64("user_id", userID).Msg("failed to check consent")
		return false, err
	}

	return count > 0, nil
}

// GetLatestConsent returns the newest record of any type for userID, or nil
// when the user never consented.
func (r *consentRepository) GetLatestConsent(ctx context.Context, userID int64) (*models.ConsentRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildLatestConsentQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		rec   models.ConsentRecord
		found bool
	)
	err = r.withRetry(ctx, "latest consent", func() error {
		scanErr := r.QueryRowContext(ctx, query, args...).Scan(&rec.ConsentID, &rec.UserID, &rec.ConsentType, &rec.Timestamp)
		if errors.Is(scanErr, sql.ErrNoRows) {
			found = false
			return nil
		}
		found = scanErr == nil
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "consentRepository.GetLatestConsent").Int64("user_id", userID).Msg("failed to get latest consent")
		return nil, err
	}
	if !found {
		return nil, nil
	}

	rec.Timestamp = rec.Timestamp.UTC()
	return &rec, nil
}
