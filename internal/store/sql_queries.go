package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-patient-guard/models"
)

var (
	userColumns    = []string{"user_id", "username", "password", "role"}
	patientColumns = []string{
		"patient_id", "name", "contact", "diagnosis",
		"anonymized_name", "anonymized_contact", "date_added", "diagnosis_encrypted",
	}
	logColumns     = []string{"log_id", "user_id", "role", "action", "timestamp", "details"}
	consentColumns = []string{"consent_id", "user_id", "consent_type", "timestamp"}
)

// users

func (db *DB) buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) buildListUsersQuery() (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From("users").
		OrderBy("user_id").
		ToSql()
}

func (db *DB) buildAddUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert("users").
		Columns("username", "password", "role").
		Values(user.Username, user.Credential, string(user.Role)).
		Suffix("RETURNING user_id").
		ToSql()
}

func (db *DB) buildUpdateCredentialQuery(userID int64, credential string) (string, []any, error) {
	return db.builder.
		Update("users").
		Set("password", credential).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// patients

func (db *DB) buildAddPatientQuery(p models.Patient) (string, []any, error) {
	return db.builder.
		Insert("patients").
		Columns("name", "contact", "diagnosis", "date_added", "diagnosis_encrypted").
		Values(p.Name, p.Contact, p.Diagnosis, p.DateAdded.UTC(), p.DiagnosisEncrypted).
		Suffix("RETURNING patient_id").
		ToSql()
}

func (db *DB) buildUpdatePatientQuery(p models.Patient) (string, []any, error) {
	return db.builder.
		Update("patients").
		Set("name", p.Name).
		Set("contact", p.Contact).
		Set("diagnosis", p.Diagnosis).
		Set("diagnosis_encrypted", p.DiagnosisEncrypted).
		Where(sq.Eq{"patient_id": p.PatientID}).
		ToSql()
}

func (db *DB) buildDeletePatientQuery(patientID int64) (string, []any, error) {
	return db.builder.
		Delete("patients").
		Where(sq.Eq{"patient_id": patientID}).
		ToSql()
}

func (db *DB) buildSetAnonymizedFieldsQuery(patientID int64, name, contact string) (string, []any, error) {
	return db.builder.
		Update("patients").
		Set("anonymized_name", name).
		Set("anonymized_contact", contact).
		Where(sq.Eq{"patient_id": patientID}).
		ToSql()
}

// buildErasePatientQuery overwrites the raw identifiers with their
// anonymized forms so only the tokens remain.
func (db *DB) buildErasePatientQuery(patientID int64, name, contact string) (string, []any, error) {
	return db.builder.
		Update("patients").
		Set("name", name).
		Set("contact", contact).
		Set("anonymized_name", name).
		Set("anonymized_contact", contact).
		Where(sq.Eq{"patient_id": patientID}).
		ToSql()
}

func (db *DB) buildListPatientsQuery() (string, []any, error) {
	return db.builder.
		Select(patientColumns...).
		From("patients").
		OrderBy("patient_id").
		ToSql()
}

func (db *DB) buildGetPatientQuery(patientID int64) (string, []any, error) {
	return db.builder.
		Select(patientColumns...).
		From("patients").
		Where(sq.Eq{"patient_id": patientID}).
		ToSql()
}

// buildSearchPatientsQuery matches term as a substring of any of fields.
// Unknown fields are ignored; a search left with none is rejected.
func (db *DB) buildSearchPatientsQuery(term string, fields []models.SearchField) (string, []any, error) {
	pattern := "%" + escapeLike(term) + "%"

	var match sq.Or
	for _, f := range fields {
		switch f {
		case models.SearchName, models.SearchAnonymizedName, models.SearchDiagnosis:
			match = append(match, sq.Expr(string(f)+" LIKE ? ESCAPE '\\'", pattern))
		case models.SearchVisibleDiagnosis:
			match = append(match, sq.And{
				sq.Eq{"anonymized_name": nil},
				sq.Expr("diagnosis LIKE ? ESCAPE '\\'", pattern),
			})
		}
	}
	if len(match) == 0 {
		return "", nil, ErrNoSearchFields
	}

	return db.builder.
		Select(patientColumns...).
		From("patients").
		Where(match).
		OrderBy("patient_id").
		ToSql()
}

// buildCountByAgeBucketsQuery counts all patients plus those added strictly
// after now minus 30, 60 and 90 days.
func (db *DB) buildCountByAgeBucketsQuery(now time.Time) (string, []any, error) {
	now = now.UTC()
	q := db.builder.Select("COUNT(*)").From("patients")
	for _, days := range []int{30, 60, 90} {
		q = q.Column(sq.Expr("COALESCE(SUM(CASE WHEN date_added > ? THEN 1 ELSE 0 END), 0)", now.AddDate(0, 0, -days)))
	}
	return q.ToSql()
}

func (db *DB) buildListOlderThanQuery(cutoff time.Time) (string, []any, error) {
	return db.builder.
		Select(patientColumns...).
		From("patients").
		Where(sq.Lt{"date_added": cutoff.UTC()}).
		OrderBy("date_added ASC", "patient_id ASC").
		ToSql()
}

func (db *DB) buildDeleteOlderThanQuery(cutoff time.Time) (string, []any, error) {
	return db.builder.
		Delete("patients").
		Where(sq.Lt{"date_added": cutoff.UTC()}).
		ToSql()
}

// logs

func (db *DB) buildAddLogQuery(entry models.AuditLogEntry) (string, []any, error) {
	var role any
	if entry.Role != nil {
		role = string(*entry.Role)
	}
	var userID any
	if entry.UserID != nil {
		userID = *entry.UserID
	}

	return db.builder.
		Insert("logs").
		Columns("user_id", "role", "action", "timestamp", "details").
		Values(userID, role, entry.Action, entry.Timestamp.UTC(), entry.Details).
		Suffix("RETURNING log_id").
		ToSql()
}

func (db *DB) buildListLogsQuery(limit uint64) (string, []any, error) {
	q := db.builder.
		Select(logColumns...).
		From("logs").
		OrderBy("log_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}

// consent

func (db *DB) buildAddConsentQuery(c models.ConsentRecord) (string, []any, error) {
	return db.builder.
		Insert("consent_log").
		Columns("user_id", "consent_type", "timestamp").
		Values(c.UserID, string(c.ConsentType), c.Timestamp.UTC()).
		Suffix("RETURNING consent_id").
		ToSql()
}

func (db *DB) buildHasConsentQuery(userID int64, consentType models.ConsentType) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From("consent_log").
		Where(sq.Eq{"user_id": userID, "consent_type": string(consentType)}).
		ToSql()
}

func (db *DB) buildLatestConsentQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select(consentColumns...).
		From("consent_log").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp DESC", "consent_id DESC").
		Limit(1).
		ToSql()
}

func escapeLike(s string) string {
	r := make([]rune, 0, len(s))
	for _, c := range s {
		if c == '%' || c == '_' || c == '\\' {
			r = append(r, '\\')
		}
		r = append(r, c)
	}
	return string(r)
}
