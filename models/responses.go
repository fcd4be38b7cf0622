// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	// Token is the signed bearer token.
	Token string `json:"token"`

	// Verified mirrors the user's verification flag so the client can
	// redirect unverified users to the verification screen.
	Verified bool `json:"verified"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	ID string `json:"id"`
}

// VerifyResponse is returned by a successful verification.
type VerifyResponse struct {
	Response string `json:"response"`
}

// ErrorResponse is the shape of every error body.
// Error holds either an [HTTPError] or a plain string for unexpected failures.
type ErrorResponse struct {
	Error any `json:"error"`
}
