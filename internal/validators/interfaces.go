// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-typed patient input before it reaches
// storage.
//
// Validation stops at the first failing field, in the order name, contact,
// diagnosis, and reports it as a *ValidationError. Error messages name the
// field and the rule, never the submitted value.
package validators

import "context"

// Validator validates an input value. When fields are given, only those
// fields are checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
