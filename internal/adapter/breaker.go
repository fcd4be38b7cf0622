// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/sony/gobreaker"
)

type breakerCriminalRecordsAdapter struct {
	next    CriminalRecordsAdapter
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerCriminalRecordsAdapter wraps next in a circuit breaker that opens
// after cfg.BreakerMaxFailures consecutive failures and lets a single probe
// through after cfg.BreakerOpenTimeout. An ineligible answer is a success.
func NewBreakerCriminalRecordsAdapter(next CriminalRecordsAdapter, cfg config.CriminalRecords, log *logger.Logger) CriminalRecordsAdapter {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 1
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "civil-registry",
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})

	return &breakerCriminalRecordsAdapter{next: next, breaker: cb}
}

// IsEligible implements [CriminalRecordsAdapter]. [BlacklistedRut] is
// answered even while the breaker is open.
func (b *breakerCriminalRecordsAdapter) IsEligible(ctx context.Context, rut string) (bool, error) {
	if rut == BlacklistedRut {
		return false, nil
	}

	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.IsEligible(ctx, rut)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false, fmt.Errorf("%w: %w", ErrRegistryUnavailable, err)
	}
	if err != nil {
		return false, err
	}

	return result.(bool), nil
}
