// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the login, registration and e-mail verification
// flows. Requests reaching it are already validated.
type AuthService interface {
	// Login checks the credentials of req and issues a session token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// Register creates an unverified user and sends the verification code.
	// It returns the id of the new user.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Verify confirms the e-mail of req.UserID with req.Code.
	Verify(ctx context.Context, req models.VerifyRequest) error

	// ParseToken verifies a bearer token and returns it with UserID set.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService reports application metadata and health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// Ping reports whether the user store answers.
	Ping(ctx context.Context) error
}

// Pinger is implemented by the storage layer.
type Pinger interface {
	Ping(ctx context.Context) error
}
