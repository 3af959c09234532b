package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

type auditRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditRepository constructs an [AuditRepository] over the "logs" table.
func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	return &auditRepository{
		DB:     db,
		logger: logger,
	}
}

// AddLog appends entry and returns its id.
func (r *auditRepository) AddLog(ctx context.Context, entry models.AuditLogEntry) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildAddLogQuery(entry)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.withRetry(ctx, "add log", func() error {
		return r.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		log.Err(err).Str("func", "auditRepository.AddLog").Str("action", entry.Action).Msg("failed to append audit entry")
		return 0, err
	}

	return id, nil
}

// ListLogs returns up to limit entries, newest first. Zero means no limit.
func (r *auditRepository) ListLogs(ctx context.Context, limit uint64) ([]models.AuditLogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListLogsQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.AuditLogEntry
	err = r.withRetry(ctx, "list logs", func() error {
		rows, queryErr := r.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		entries = make([]models.AuditLogEntry, 0, 50)
		for rows.Next() {
			var (
				e      models.AuditLogEntry
				userID sql.NullInt64
				role   sql.NullString
			)
			if scanErr := rows.Scan(&e.LogID, &userID, &role, &e.Action, &e.Timestamp, &e.Details); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			if userID.Valid {
				id := userID.Int64
				e.UserID = &id
			}
			if role.Valid {
				rl := models.Role(role.String)
				e.Role = &rl
			}
			e.Timestamp = e.Timestamp.UTC()
			entries = append(entries, e)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "auditRepository.ListLogs").Msg("failed to list audit entries")
		return nil, err
	}

	return entries, nil
}
