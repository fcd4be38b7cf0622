// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/models"
)

// MetricsAuthService records the outcome and duration of every auth flow.
type MetricsAuthService struct {
	inner   AuthService
	metrics *metrics.Metrics
}

func NewMetricsAuthService(m *metrics.Metrics) AuthServiceWrapper {
	return &MetricsAuthService{metrics: m}
}

func (s *MetricsAuthService) Login(ctx context.Context, req models.LoginRequest) (resp models.LoginResponse, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRequest(metrics.OperationLogin, start, err) }()

	return s.inner.Login(ctx, req)
}

func (s *MetricsAuthService) Register(ctx context.Context, req models.RegisterRequest) (id string, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRequest(metrics.OperationRegister, start, err) }()

	return s.inner.Register(ctx, req)
}

func (s *MetricsAuthService) Verify(ctx context.Context, req models.VerifyRequest) (err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveRequest(metrics.OperationVerify, start, err) }()

	return s.inner.Verify(ctx, req)
}

func (s *MetricsAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return s.inner.ParseToken(ctx, tokenString)
}

func (s *MetricsAuthService) Wrap(inner AuthService) AuthService {
	s.inner = inner
	return s
}
