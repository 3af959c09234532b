package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-patient-guard/internal/logger"
)

func fastRetries(t *testing.T) {
	t.Helper()
	saved := retryDelays
	retryDelays = []time.Duration{time.Millisecond, time.Millisecond}
	t.Cleanup(func() { retryDelays = saved })
}

func TestWithRetry_RecoversFromBusy(t *testing.T) {
	fastRetries(t)
	db, mock := newTestDB(t, DialectSQLite)
	repo := NewPatientRepository(db, logger.Nop())

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	mock.ExpectExec("DELETE FROM patients").WillReturnError(busy)
	mock.ExpectExec("DELETE FROM patients").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeletePatient(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_GivesUp(t *testing.T) {
	fastRetries(t)
	db, mock := newTestDB(t, DialectSQLite)
	repo := NewPatientRepository(db, logger.Nop())

	locked := sqlite3.Error{Code: sqlite3.ErrLocked}
	for range 3 {
		mock.ExpectExec("DELETE FROM patients").WillReturnError(locked)
	}

	err := repo.DeletePatient(context.Background(), 1)

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.True(t, pErr.Retryable)
	assert.Equal(t, "delete patient", pErr.Op)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_NonRetryableStopsImmediately(t *testing.T) {
	fastRetries(t)
	db, mock := newTestDB(t, DialectPostgres)
	repo := NewPatientRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM patients").WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.DeletePatient(context.Background(), 1)

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.False(t, pErr.Retryable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	db, _ := newTestDB(t, DialectSQLite)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, "op", func() error {
		calls++
		return sqlite3.Error{Code: sqlite3.ErrBusy}
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithRetry_DomainErrorPassesThrough(t *testing.T) {
	db, _ := newTestDB(t, DialectSQLite)

	err := db.withRetry(context.Background(), "op", func() error {
		return errDomain(ErrNotFound)
	})

	assert.True(t, errors.Is(err, ErrNotFound))
	var pErr *PersistenceError
	assert.False(t, errors.As(err, &pErr))
}
