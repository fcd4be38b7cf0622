// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /register.
// Name is an optional profile field persisted as-is.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Rut      string `json:"rut"`
	Password string `json:"password"`
}

// VerifyRequest is the body of POST /verify.
// UserID is not read from the body: it is the subject of the bearer token.
type VerifyRequest struct {
	UserID string `json:"-"`
	Code   string `json:"code"`
}
