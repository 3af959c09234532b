package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

// newSQLitePatientRepo opens a migrated sqlite file under t.TempDir.
func newSQLitePatientRepo(t *testing.T) PatientRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "clinic.db")
	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return NewPatientRepository(db, logger.Nop())
}

func seedPatient(t *testing.T, repo PatientRepository, name, diagnosis string, added time.Time) int64 {
	t.Helper()

	id, err := repo.AddPatient(context.Background(), models.Patient{
		Name:      name,
		Contact:   "555-000-1234",
		Diagnosis: diagnosis,
		DateAdded: added,
	})
	require.NoError(t, err)
	return id
}

func TestSQLite_RetentionWindow(t *testing.T) {
	repo := newSQLitePatientRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedPatient(t, repo, "Recent", "Flu", now.AddDate(0, 0, -10))
	mid := seedPatient(t, repo, "Stale", "Cold", now.AddDate(0, 0, -95))
	oldest := seedPatient(t, repo, "Ancient", "Cough", now.AddDate(0, 0, -200))

	stats, err := repo.CountByAgeBuckets(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, models.AgeStats{Total: 3, Last30: 1, Last60: 1, Last90: 1}, stats)

	cutoff := now.AddDate(0, 0, -90)
	expired, err := repo.ListOlderThan(ctx, cutoff)
	require.NoError(t, err)
	require.Len(t, expired, 2)
	assert.Equal(t, oldest, expired[0].PatientID)
	assert.Equal(t, mid, expired[1].PatientID)

	purged, err := repo.DeleteOlderThan(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	left, err := repo.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "Recent", left[0].Name)
}

func TestSQLite_SearchFields(t *testing.T) {
	repo := newSQLitePatientRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	jane := seedPatient(t, repo, "Jane Doe", "HIV positive", now)
	hidden := seedPatient(t, repo, "Mark Roe", "HIV positive", now)
	require.NoError(t, repo.SetAnonymizedFields(ctx, hidden, "ANON_1A2B3C", "XXX-XXX-1234"))

	byName, err := repo.SearchPatients(ctx, "Jane Doe", []models.SearchField{models.SearchDiagnosis})
	require.NoError(t, err)
	assert.Empty(t, byName)

	byName, err = repo.SearchPatients(ctx, "Jane Doe", []models.SearchField{models.SearchAnonymizedName, models.SearchVisibleDiagnosis})
	require.NoError(t, err)
	assert.Empty(t, byName)

	byName, err = repo.SearchPatients(ctx, "Jane Doe", []models.SearchField{models.SearchName})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, jane, byName[0].PatientID)

	visible, err := repo.SearchPatients(ctx, "HIV", []models.SearchField{models.SearchVisibleDiagnosis})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, jane, visible[0].PatientID)

	all, err := repo.SearchPatients(ctx, "HIV", []models.SearchField{models.SearchDiagnosis})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
