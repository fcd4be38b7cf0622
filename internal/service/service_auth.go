// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/metrics"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/models"
)

// authService is the concrete implementation of AuthService.
// Every collaborator is injected through a narrow interface; the service
// itself holds no mutable state and is safe for concurrent use.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher hashes new passwords and checks login attempts.
	passwordHasher crypto.PasswordHasher

	// tokenManager issues tokens on login and verifies bearer tokens.
	tokenManager crypto.TokenManager

	// codeGenerator produces the e-mail verification codes.
	codeGenerator crypto.CodeGenerator

	criminalRecords adapter.CriminalRecordsAdapter
	notification    adapter.NotificationAdapter

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// AuthDependencies groups the collaborators of [NewAuthService].
type AuthDependencies struct {
	UserRepository  store.UserRepository
	PasswordHasher  crypto.PasswordHasher
	TokenManager    crypto.TokenManager
	CodeGenerator   crypto.CodeGenerator
	CriminalRecords adapter.CriminalRecordsAdapter
	Notification    adapter.NotificationAdapter
	Metrics         *metrics.Metrics
}

// NewAuthService constructs an AuthService from deps.
func NewAuthService(deps AuthDependencies, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  deps.UserRepository,
		passwordHasher:  deps.PasswordHasher,
		tokenManager:    deps.TokenManager,
		codeGenerator:   deps.CodeGenerator,
		criminalRecords: deps.CriminalRecords,
		notification:    deps.Notification,
		metrics:         deps.Metrics,
		logger:          logger,
	}
}

// Login authenticates a user by e-mail and password.
//
// Returns:
//   - ErrInvalidCredentials for an unknown e-mail or a wrong password.
//   - ErrBlockedUser for a blocked account; the password is not checked.
//   - a wrapped error for store, hashing or token failures.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Login").Msg("unknown e-mail")
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by e-mail failed")
		return models.LoginResponse{}, fmt.Errorf("user search by e-mail failed: %w", err)
	}

	if user.Blocked {
		log.Warn().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("blocked user tried to log in")
		return models.LoginResponse{}, ErrBlockedUser
	}

	match, err := a.passwordHasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("password comparison failed")
		return models.LoginResponse{}, fmt.Errorf("password comparison failed: %w", err)
	}
	if !match {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := a.tokenManager.Issue(user.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("token creation failed")
		return models.LoginResponse{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.LoginResponse{Token: token.SignedString, Verified: user.Verified}, nil
}

// Register creates an unverified user and e-mails the verification code.
//
// The steps run in order and stop at the first failure:
//  1. an existing user with the same e-mail or rut → ErrUserAlreadyExists;
//  2. the civil registry rejects the rut → ErrNotAllowed;
//  3. the password is hashed, a code generated and the user persisted. A
//     unique violation from a concurrent registration → ErrUserAlreadyExists;
//  4. the e-mail is sent. On failure the new user is deleted and the send
//     error is returned.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmailOrRut(ctx, req.Email, req.Rut)
	if err == nil {
		log.Debug().Str("func", "*authService.Register").Msg("e-mail or rut already registered")
		return "", ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*authService.Register").Msg("user search by e-mail or rut failed")
		return "", fmt.Errorf("user search by e-mail or rut failed: %w", err)
	}

	eligible, err := a.criminalRecords.IsEligible(ctx, req.Rut)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEligibilityCheck, err)
	}
	if !eligible {
		log.Info().Str("func", "*authService.Register").Msg("rut rejected by the civil registry")
		return "", ErrNotAllowed
	}

	passwordHash, err := a.passwordHasher.Hash(req.Password)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	code, err := a.codeGenerator.Generate()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCodeGeneration, err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		Rut:          req.Rut,
		PasswordHash: passwordHash,
		Code:         &code,
	})
	if errors.Is(err, store.ErrUserAlreadyExists) {
		log.Debug().Str("func", "*authService.Register").Msg("lost registration race")
		return "", ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("user creation ended with error")
		return "", fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.notification.SendVerificationEmail(ctx, created.Email, code); err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("user_id", created.ID).Msg("verification e-mail was not sent, removing user")
		a.compensate(ctx, created.ID)
		return "", fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	return created.ID, nil
}

// compensate deletes a user whose verification e-mail could not be sent.
// The delete outlives a cancelled request context.
func (a *authService) compensate(ctx context.Context, userID string) {
	log := logger.FromContext(ctx)

	a.metrics.IncrementCompensations()
	if err := a.userRepository.DeleteUser(context.WithoutCancel(ctx), userID); err != nil {
		log.Err(err).Str("func", "*authService.compensate").Str("user_id", userID).Msg("failed to delete user after e-mail failure")
	}
}

// Verify marks the user verified when req.Code equals the stored code.
//
// Returns ErrUserNotFound, ErrAlreadyVerified, ErrCodeNotFound or
// ErrInvalidCode, checked in that order.
func (a *authService) Verify(ctx context.Context, req models.VerifyRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, req.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Verify").Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if user.Verified {
		return ErrAlreadyVerified
	}
	if !user.HasPendingCode() {
		log.Warn().Str("func", "*authService.Verify").Str("user_id", user.ID).Msg("unverified user has no code")
		return ErrCodeNotFound
	}
	if subtle.ConstantTimeCompare([]byte(*user.Code), []byte(req.Code)) != 1 {
		return ErrInvalidCode
	}

	err = a.userRepository.MarkUserVerified(ctx, user.ID)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Verify").Str("user_id", user.ID).Msg("marking user verified failed")
		return fmt.Errorf("marking user verified failed: %w", err)
	}

	return nil
}

// ParseToken validates and parses a raw JWT string. Verification failures
// are returned unchanged as *utils.TokenError.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.tokenManager.Parse(tokenString)
}
