// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// It carries the credential and verification state checked by the login and
// verify flows. Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier of the user.
	// MongoDB stores it as an ObjectID (hex encoded here), SQL stores as UUIDv7.
	ID string `json:"id" bson:"-"`

	// Name is the display name of the user. Persisted as-is.
	Name string `json:"name" bson:"name"`

	// Email is the unique e-mail address. Uniqueness is case-insensitive.
	Email string `json:"email" bson:"email"`

	// Rut is the national identification number. Unique, case-insensitive.
	Rut string `json:"rut" bson:"rut"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never stored.
	PasswordHash string `json:"-" bson:"password"`

	// Verified reports whether the e-mail verification code was confirmed.
	Verified bool `json:"verified" bson:"verified"`

	// Code is the pending e-mail verification code.
	// It is nil for verified users.
	Code *string `json:"-" bson:"code"`

	// Blocked is set outside of this service. Blocked users cannot log in.
	Blocked bool `json:"blocked" bson:"blocked"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// TableName returns the name of the database table (or collection)
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPendingCode reports whether a non-empty verification code is stored.
func (u User) HasPendingCode() bool {
	return u.Code != nil && *u.Code != ""
}
