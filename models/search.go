package models

// SearchField names a patient column a search term may be matched against.
type SearchField string

const (
	SearchName           SearchField = "name"
	SearchAnonymizedName SearchField = "anonymized_name"
	SearchDiagnosis      SearchField = "diagnosis"
	// SearchVisibleDiagnosis matches diagnosis only on records that have
	// not been anonymized.
	SearchVisibleDiagnosis SearchField = "visible_diagnosis"
)
