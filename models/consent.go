// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConsentType names a category of data processing a user agreed to.
type ConsentType string

// ConsentDataProcessing is the first-use consent every user gives before
// touching patient data.
const ConsentDataProcessing ConsentType = "data_processing"

// ConsentRecord is timestamped proof of consent. Records are only appended;
// there is no revocation.
type ConsentRecord struct {
	ConsentID   int64       `json:"consent_id"`
	UserID      int64       `json:"user_id"`
	ConsentType ConsentType `json:"consent_type"`
	Timestamp   time.Time   `json:"timestamp"`
}

// TableName returns the name of the database table
// associated with the ConsentRecord model.
func (c ConsentRecord) TableName() string {
	return "consent_log"
}
