package access

import "errors"

var (
	// ErrUnknownRole is returned when a role has no projection rule.
	ErrUnknownRole = errors.New("unknown role")
)
