// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// user-auth handlers, validators and services.
//
// Name* constants identify the kind of a failure and are sent to clients in
// the "name" field of an error body; Msg* constants are the human-readable
// "msg" texts. Keeping them in one place ensures consistent wording
// throughout the API.
package app

// Error names.
const (
	NameValidationError    = "ValidationError"
	NameInvalidCredentials = "InvalidCredentials"
	NameBlockedUser        = "BlockedUser"
	NameUserAlreadyExists  = "UserAlreadyExists"
	NameNotAllowed         = "NotAllowed"
	NameUserNotFound       = "UserNotFound"
	NameAlreadyVerified    = "AlreadyVerified"
	NameCodeNotFound       = "CodeNotFound"
	NameInvalidCode        = "InvalidCode"
	NameUnauthorized       = "Unauthorized"
	NameTokenExpired       = "TokenExpiredError"
	NameInvalidToken       = "JsonWebTokenError"
)

// Login messages.
const (
	// MsgInvalidEmail is returned when the e-mail is missing or is not a
	// syntactically valid address.
	MsgInvalidEmail = "email is required and must be a valid email address"

	// MsgInvalidPassword is returned when the password is missing or empty.
	MsgInvalidPassword = "password is required"

	// MsgPasswordTooLong is returned when a new password does not fit into
	// a bcrypt hash.
	MsgPasswordTooLong = "password must be at most 72 bytes long"

	// MsgInvalidCredentials is returned for both an unknown e-mail and a wrong
	// password, so that callers cannot probe for registered addresses.
	MsgInvalidCredentials = "invalid credentials"

	MsgBlockedUser = "User is blocked"
)

// Register messages.
const (
	MsgInvalidRut = "rut is required"

	MsgUserAlreadyExists = "user already exists"

	// MsgNotAllowed is returned when the civil registry reports criminal
	// records for the given rut.
	MsgNotAllowed = "user is not allowed to register"

	MsgVerificationEmailSubject = "Your verification code"
)

// Verify messages.
const (
	// MsgInvalidCode is returned by request validation when the code is not
	// a 6-digit number.
	MsgInvalidCode = "code must be a 6 digits number"

	// MsgCodeMismatch is returned by the verify flow when the code does not
	// match the stored one.
	MsgCodeMismatch = "invalid verification code"

	MsgUserNotFound = "user not found"

	MsgAlreadyVerified = "user is already verified"

	// MsgCodeNotFound is returned when an unverified user has no stored
	// code, which indicates an inconsistent record.
	MsgCodeNotFound = "verification code not found"

	MsgVerifySuccess = "User verified successfully"
)

// Request body messages.
const (
	// MsgInvalidJSON is returned when the body is not a JSON object or a
	// field has a type no validation rule covers.
	MsgInvalidJSON = "request body must be a valid JSON object"
)

// Authorization header messages.
const (
	MsgEmptyAuthorizationHeader   = "empty `Authorization` header"
	MsgInvalidAuthorizationHeader = "invalid `Authorization` header"
)
