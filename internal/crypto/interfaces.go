// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential primitives of the service: password
// hashing, token issuing and verification codes.
package crypto

import "github.com/MKhiriev/go-user-auth/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and checks user passwords.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is not an
	// error; the error is reserved for malformed hashes.
	Compare(hash, password string) (bool, error)
}

// TokenManager issues and verifies signed session tokens.
type TokenManager interface {
	// Issue returns a token whose subject is userID.
	Issue(userID string) (models.Token, error)

	// Parse verifies tokenString and returns the token with its UserID set.
	// Verification failures are returned as *utils.TokenError.
	Parse(tokenString string) (models.Token, error)
}

// CodeGenerator produces e-mail verification codes.
type CodeGenerator interface {
	// Generate returns a fresh 6-digit decimal code.
	Generate() (string, error)
}
