// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation of the auth request bodies.
// Validation runs before any I/O and reports client errors as *models.HTTPError.
//
// Usage patterns:
//  1. Inject a Validator into the HTTP handlers.
//  2. Call Validate with context, value, and optional field names to enforce rules.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
