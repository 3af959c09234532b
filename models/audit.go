// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditLogEntry is one immutable line of the audit trail. UserID and Role are
// nil for unauthenticated events such as a failed login.
type AuditLogEntry struct {
	LogID     int64     `json:"log_id"`
	UserID    *int64    `json:"user_id"`
	Role      *Role     `json:"role"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}

// TableName returns the name of the database table
// associated with the AuditLogEntry model.
func (a AuditLogEntry) TableName() string {
	return "logs"
}
