// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-patient-guard/internal/audit"
	"github.com/MKhiriev/go-patient-guard/internal/credentials"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/internal/store"
	"github.com/MKhiriev/go-patient-guard/internal/utils"
	"github.com/MKhiriev/go-patient-guard/models"
)

// authService is the concrete implementation of AuthService.
// It verifies submitted secrets against stored credentials, which are either
// SHA-256 hex digests or legacy plaintext, and audits every login attempt.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// audit records login, login_failed, login_error and logout.
	audit *audit.Writer

	// sessionIDs issues session identifiers.
	sessionIDs *utils.UUIDGenerator

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and audit writer.
func NewAuthService(userRepository store.UserRepository, auditWriter *audit.Writer, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		audit:          auditWriter,
		sessionIDs:     utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// Authenticate returns the user whose stored credential matches password.
//
// Returns:
//   - ErrInvalidCredentials for an unknown user or a mismatch.
//   - *AuthenticationError when the lookup itself fails.
//
// Nothing is audited here; see Login.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user lookup failed")
		return models.User{}, &AuthenticationError{Username: username, Err: err}
	}

	if !credentials.Verify(password, user.Credential) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Login authenticates and records exactly one audit entry: login on
// success, login_failed on a mismatch and login_error on a lookup failure.
// A login whose audit entry cannot be written fails.
func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	log := logger.FromContext(ctx)

	user, err := a.Authenticate(ctx, username, password)
	if err != nil {
		action := audit.ActionLoginFailed
		var authErr *AuthenticationError
		if errors.As(err, &authErr) {
			action = audit.ActionLoginError
		}

		if auditErr := a.audit.Record(ctx, nil, action, fmt.Sprintf("username=%s", username)); auditErr != nil {
			return models.Session{}, errors.Join(err, auditErr)
		}
		return models.Session{}, err
	}

	if err = a.audit.Record(ctx, &user, audit.ActionLogin, "Successful login"); err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	log.Info().Str("func", "*authService.Login").Int64("user_id", user.UserID).Str("role", user.Role.String()).Msg("user logged in")

	return models.Session{
		ID:        a.sessionIDs.Generate(),
		User:      user,
		StartedAt: a.now().UTC(),
	}, nil
}

// Logout records the end of a session.
func (a *authService) Logout(ctx context.Context, session models.Session) error {
	if err := a.audit.Record(ctx, &session.User, audit.ActionLogout, ""); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// MigrateLegacyCredentials replaces every plaintext credential with its
// SHA-256 digest and returns how many were migrated. Already hashed
// credentials are left alone, so running it twice is harmless.
func (a *authService) MigrateLegacyCredentials(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	migrated := 0
	for _, u := range users {
		if credentials.IsHashed(u.Credential) {
			continue
		}
		if err = a.userRepository.UpdateCredential(ctx, u.UserID, credentials.Hash(u.Credential)); err != nil {
			return migrated, fmt.Errorf("migrate credential of user %d: %w", u.UserID, err)
		}
		log.Info().Str("func", "*authService.MigrateLegacyCredentials").Str("username", u.Username).Msg("migrated credential")
		migrated++
	}

	if migrated > 0 {
		if err = a.audit.Record(ctx, nil, audit.ActionMigrateCredential, fmt.Sprintf("migrated=%d", migrated)); err != nil {
			return migrated, err
		}
	}

	return migrated, nil
}
