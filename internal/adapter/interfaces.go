// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external collaborators of the
// registration flow.
//
// [CriminalRecordsAdapter] asks the civil registry whether a national id is
// allowed to register. [NotificationAdapter] delivers the verification e-mail.
// Both are narrow interfaces so the service layer can be tested with mocks.
//
// Error values defined in errors.go are produced by mapHTTPError for non-2xx
// responses so that callers can use [errors.Is] regardless of the transport.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CriminalRecordsAdapter checks a national id against the civil registry.
type CriminalRecordsAdapter interface {
	// IsEligible reports whether the person identified by rut has no
	// criminal records. A transport failure is returned as an error and
	// never as an ineligible result.
	IsEligible(ctx context.Context, rut string) (bool, error)
}

// NotificationAdapter delivers messages to users.
type NotificationAdapter interface {
	// SendVerificationEmail sends the e-mail verification code to the
	// address to.
	SendVerificationEmail(ctx context.Context, to, code string) error
}
