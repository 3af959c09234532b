package models

import "time"

// Session is an authenticated dashboard session. The role is fixed for its
// lifetime.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	StartedAt time.Time `json:"started_at"`
}
