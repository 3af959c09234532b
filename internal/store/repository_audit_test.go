package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

func TestAddLog(t *testing.T) {
	db, mock := newTestDB(t, DialectSQLite)
	repo := NewAuditRepository(db, logger.Nop())

	userID := int64(1)
	role := models.RoleAdmin
	ts := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO logs").
		WithArgs(int64(1), "admin", "add_patient", sqlmock.AnyArg(), "patient_id=3").
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(100))

	id, err := repo.AddLog(context.Background(), models.AuditLogEntry{
		UserID: &userID, Role: &role, Action: "add_patient", Timestamp: ts, Details: "patient_id=3",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddLog_Anonymous(t *testing.T) {
	db, mock := newTestDB(t, DialectSQLite)
	repo := NewAuditRepository(db, logger.Nop())

	mock.ExpectQuery("INSERT INTO logs").
		WithArgs(nil, nil, "login_failed", sqlmock.AnyArg(), "username=ghost").
		WillReturnRows(sqlmock.NewRows([]string{"log_id"}).AddRow(1))

	_, err := repo.AddLog(context.Background(), models.AuditLogEntry{Action: "login_failed", Timestamp: time.Now(), Details: "username=ghost"})
	require.NoError(t, err)
}

func TestListLogs_NewestFirst(t *testing.T) {
	db, mock := newTestDB(t, DialectSQLite)
	repo := NewAuditRepository(db, logger.Nop())

	ts := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"log_id", "user_id", "role", "action", "timestamp", "details"}).
		AddRow(2, 1, "admin", "logout", ts, "").
		AddRow(1, nil, nil, "login_failed", ts, "username=ghost")
	mock.ExpectQuery("SELECT (.+) FROM logs ORDER BY log_id DESC LIMIT 10").WillReturnRows(rows)

	entries, err := repo.ListLogs(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].UserID)
	assert.Equal(t, int64(1), *entries[0].UserID)
	assert.Equal(t, models.RoleAdmin, *entries[0].Role)

	assert.Nil(t, entries[1].UserID)
	assert.Nil(t, entries[1].Role)
	assert.Equal(t, "login_failed", entries[1].Action)
}
