// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests and blocks until ctx is cancelled or the
	// server fails. A graceful stop is not an error.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server. When ctx expires first the
	// remaining connections are closed forcibly.
	Shutdown(ctx context.Context) error
}
