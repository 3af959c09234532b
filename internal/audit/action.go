package audit

import "github.com/MKhiriev/go-patient-guard/models"

// Action is the kind of an audit log entry. The known kinds are the
// constants below; anything else must be built with Other so that new kinds
// are introduced on purpose.
type Action struct {
	name string
}

var (
	ActionLogin             = Action{"login"}
	ActionLoginFailed       = Action{"login_failed"}
	ActionLoginError        = Action{"login_error"}
	ActionLogout            = Action{"logout"}
	ActionAddPatient        = Action{"add_patient"}
	ActionUpdatePatient     = Action{"update_patient"}
	ActionDeletePatient     = Action{"delete_patient"}
	ActionErasePatient      = Action{"erase_patient"}
	ActionAnonymizeAll      = Action{"anonymize_all"}
	ActionExportCSV         = Action{"export_csv"}
	ActionViewAuditLog      = Action{"view_audit_log"}
	ActionGDPRConsent       = Action{"gdpr_consent"}
	ActionGDPRDataRetention = Action{"gdpr_data_retention"}
	ActionSearchPatients    = Action{"search_patients"}
	ActionMigrateCredential = Action{"migrate_credentials"}
)

var known = map[string]struct{}{}

func init() {
	for _, a := range []Action{
		ActionLogin, ActionLoginFailed, ActionLoginError, ActionLogout,
		ActionAddPatient, ActionUpdatePatient, ActionDeletePatient, ActionErasePatient,
		ActionAnonymizeAll, ActionExportCSV, ActionViewAuditLog,
		ActionGDPRConsent, ActionGDPRDataRetention, ActionSearchPatients, ActionMigrateCredential,
	} {
		known[a.name] = struct{}{}
	}
	for _, r := range models.Roles {
		known[ViewPatients(r).name] = struct{}{}
	}
}

// ViewPatients is the action recorded when role lists patients.
func ViewPatients(role models.Role) Action {
	return Action{"view_patients_" + string(role)}
}

// Other wraps an action name outside the known set. Writer accepts it but
// logs a warning.
func Other(name string) Action {
	return Action{name}
}

// String returns the name stored in the log.
func (a Action) String() string {
	return a.name
}

// IsKnown reports whether a is one of the predefined actions.
func (a Action) IsKnown() bool {
	_, ok := known[a.name]
	return ok
}
