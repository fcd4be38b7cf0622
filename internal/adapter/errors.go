// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrUnexpectedStatus         = errors.New("unexpected response status")
	ErrRegistryUnavailable      = errors.New("civil registry unavailable")
	ErrInvalidBaseURL           = errors.New("invalid base url")
	ErrUnknownNotificationKind  = errors.New("unknown notification kind")
	ErrMissingSMTPConfiguration = errors.New("smtp host is required")
)
