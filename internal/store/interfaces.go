// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user records.
//
// E-mail and rut lookups are case-insensitive. Uniqueness of both is enforced
// by the backend at write time, so a concurrent duplicate registration fails
// with [ErrUserAlreadyExists].
type UserRepository interface {
	// CreateUser stores user and returns it with the backend-assigned ID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the user whose e-mail equals email ignoring case.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByEmailOrRut returns any user matching email or rut ignoring case.
	FindUserByEmailOrRut(ctx context.Context, email, rut string) (models.User, error)

	// FindUserByID returns the user with id. A malformed id is reported as
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// MarkUserVerified sets verified and clears the code in a single write.
	MarkUserVerified(ctx context.Context, id string) error

	// DeleteUser removes the user with id.
	DeleteUser(ctx context.Context, id string) error
}

// ErrorClassifier recognizes backend-specific failures.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err is a unique constraint violation.
	IsUniqueViolation(err error) bool
}
