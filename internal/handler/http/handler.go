// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// metrics serves GET /metrics. A nil handler leaves the route out.
	metrics http.Handler

	requestTimeout time.Duration

	logger *logger.Logger
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithMetrics exposes h on GET /metrics.
func WithMetrics(h http.Handler) Option {
	return func(handler *Handler) {
		handler.metrics = h
	}
}

// WithRequestTimeout bounds every request with d.
func WithRequestTimeout(d time.Duration) Option {
	return func(handler *Handler) {
		handler.requestTimeout = d
	}
}

// WithValidator replaces the default request validator.
func WithValidator(v validators.Validator) Option {
	return func(handler *Handler) {
		handler.validator = v
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewUserValidator(),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
