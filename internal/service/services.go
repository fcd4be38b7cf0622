// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business flows of the user-auth server.
package service

import (
	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/internal/store"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
}

// Adapters groups the outbound collaborators of the services.
type Adapters struct {
	CriminalRecords adapter.CriminalRecordsAdapter
	Notification    adapter.NotificationAdapter
}

func NewServices(storages *store.Storages, adapters Adapters, cfg config.App, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, storages, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(AuthDependencies{
		UserRepository:  storages.UserRepository,
		PasswordHasher:  crypto.NewPasswordHasher(cfg.PasswordHashCost),
		TokenManager:    crypto.NewTokenManager(cfg.TokenIssuer, cfg.TokenDuration, cfg.TokenSignKey),
		CodeGenerator:   crypto.NewCodeGenerator(),
		CriminalRecords: adapters.CriminalRecords,
		Notification:    adapters.Notification,
		Metrics:         m,
	}, logger)

	return &Services{
		AuthService:    NewMetricsAuthService(m).Wrap(authService),
		AppInfoService: appInfoService,
	}, nil
}
