// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is one of the three enumerated dashboard roles. There is no hierarchy
// between roles; every capability is granted per role explicitly.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleAdmin, RoleDoctor, RoleReceptionist}

// IsValid reports whether r is one of the enumerated roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
