// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// BlacklistedRut is the national id the civil registry always reports as
// having criminal records.
const BlacklistedRut = "555555555"

// criminalRecordsResponse is the body of GET /criminal-records/{rut}.
type criminalRecordsResponse struct {
	Rut                string `json:"rut"`
	HasCriminalRecords bool   `json:"hasCriminalRecords"`
}

// NewCriminalRecordsAdapter builds the registry client described by cfg.
//
// Without a base URL a local stub is returned that rejects only
// [BlacklistedRut]. With a base URL the HTTP client is wrapped in a circuit
// breaker; an open breaker fails fast with [ErrRegistryUnavailable].
func NewCriminalRecordsAdapter(cfg config.CriminalRecords, log *logger.Logger) (CriminalRecordsAdapter, error) {
	if cfg.BaseURL == "" {
		log.Warn().Str("func", "NewCriminalRecordsAdapter").Msg("civil registry url is not set, using stub")
		return NewStubCriminalRecordsAdapter(), nil
	}

	httpAdapter, err := NewHTTPCriminalRecordsAdapter(cfg, log)
	if err != nil {
		return nil, err
	}

	return NewBreakerCriminalRecordsAdapter(httpAdapter, cfg, log), nil
}

type httpCriminalRecordsAdapter struct {
	client *utils.HTTPClient
}

// NewHTTPCriminalRecordsAdapter constructs a resty-backed
// [CriminalRecordsAdapter] calling GET {BaseURL}/criminal-records/{rut}.
func NewHTTPCriminalRecordsAdapter(cfg config.CriminalRecords, log *logger.Logger) (CriminalRecordsAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid civil registry address: %w", err)
	}

	log.Debug().Str("base_url", baseURL).Msg("creating civil registry client")
	return &httpCriminalRecordsAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
	}, nil
}

// IsEligible implements [CriminalRecordsAdapter]. [BlacklistedRut] is
// rejected without calling the registry.
func (a *httpCriminalRecordsAdapter) IsEligible(ctx context.Context, rut string) (bool, error) {
	log := logger.FromContext(ctx)

	if rut == BlacklistedRut {
		return false, nil
	}

	var body criminalRecordsResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetPathParam("rut", rut).
		SetResult(&body).
		Get("/criminal-records/{rut}")
	if err != nil {
		log.Err(err).Str("func", "*httpCriminalRecordsAdapter.IsEligible").Msg("civil registry request failed")
		return false, fmt.Errorf("criminal records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpCriminalRecordsAdapter.IsEligible").Msg("civil registry returned an error")
		return false, err
	}

	return !body.HasCriminalRecords, nil
}

type stubCriminalRecordsAdapter struct{}

// NewStubCriminalRecordsAdapter returns a [CriminalRecordsAdapter] that never
// leaves the process and rejects only [BlacklistedRut].
func NewStubCriminalRecordsAdapter() CriminalRecordsAdapter {
	return stubCriminalRecordsAdapter{}
}

func (stubCriminalRecordsAdapter) IsEligible(ctx context.Context, rut string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return rut != BlacklistedRut, nil
}
