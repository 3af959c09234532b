package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. The two cases are not distinguished.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden is returned when the actor's role lacks the permission.
	ErrForbidden = errors.New("action not permitted for role")

	ErrInvalidRetentionDays = errors.New("retention days must be positive")
	ErrEmptyConsentType     = errors.New("consent type is required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// AuthenticationError reports a credential lookup that failed for a reason
// other than a mismatch, such as an unreachable store.
type AuthenticationError struct {
	Username string
	Err      error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authenticate %q: %v", e.Username, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}
