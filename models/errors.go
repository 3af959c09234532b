package models

import "errors"

// ErrPartialAnonymization is returned for a record that has exactly one of
// its anonymized fields set.
var ErrPartialAnonymization = errors.New("record is partially anonymized")
