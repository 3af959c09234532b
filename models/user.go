// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a provisioned dashboard account. Users are created out of band;
// the only mutation this module performs is credential rotation.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Role is fixed per user and decides every projection and permission.
	Role Role `json:"role"`

	// Credential is either a 64 character SHA-256 hex digest or, for accounts
	// that predate hashing, the legacy plaintext secret.
	// It is never serialized.
	Credential string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
