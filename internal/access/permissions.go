package access

import "github.com/MKhiriev/go-patient-guard/models"

// Permission names an action gated by role.
type Permission string

const (
	PermListPatients   Permission = "list_patients"
	PermViewPatient    Permission = "view_patient"
	PermSearchPatients Permission = "search_patients"
	PermAddPatient     Permission = "add_patient"
	PermUpdatePatient  Permission = "update_patient"
	PermDeletePatient  Permission = "delete_patient"
	PermErasePatient   Permission = "erase_patient"
	PermAnonymize      Permission = "anonymize_all"
	PermExport         Permission = "export_csv"
	PermViewAuditLog   Permission = "view_audit_log"
	PermRetention      Permission = "data_retention"
	PermConsent        Permission = "record_consent"
)

var permissions = map[Permission][]models.Role{
	PermListPatients:   models.Roles,
	PermViewPatient:    models.Roles,
	PermSearchPatients: models.Roles,
	PermConsent:        models.Roles,
	PermAddPatient:     {models.RoleAdmin, models.RoleReceptionist},
	PermUpdatePatient:  {models.RoleAdmin},
	PermDeletePatient:  {models.RoleAdmin},
	PermErasePatient:   {models.RoleAdmin},
	PermAnonymize:      {models.RoleAdmin},
	PermExport:         {models.RoleAdmin},
	PermViewAuditLog:   {models.RoleAdmin},
	PermRetention:      {models.RoleAdmin},
}

// Can reports whether role holds perm. Unknown roles and unknown
// permissions are denied.
func Can(role models.Role, perm Permission) bool {
	for _, r := range permissions[perm] {
		if r == role {
			return true
		}
	}
	return false
}

var searchFields = map[models.Role][]models.SearchField{
	models.RoleAdmin:        {models.SearchName, models.SearchDiagnosis, models.SearchAnonymizedName},
	models.RoleDoctor:       {models.SearchAnonymizedName, models.SearchVisibleDiagnosis},
	models.RoleReceptionist: {models.SearchDiagnosis},
}

// SearchFields lists the columns role may match a search term against.
// Only admins can search by real name. Doctors match a diagnosis only on
// records that are not anonymized. Unknown roles get nil.
func SearchFields(role models.Role) []models.SearchField {
	return searchFields[role]
}
