// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/models"
)

// Domain errors returned by [AuthService]. The HTTP layer writes them as-is.
var (
	ErrInvalidCredentials = models.NewHTTPError(app.NameInvalidCredentials, app.MsgInvalidCredentials, http.StatusBadRequest)
	ErrBlockedUser        = models.NewHTTPError(app.NameBlockedUser, app.MsgBlockedUser, http.StatusForbidden)
	ErrUserAlreadyExists  = models.NewHTTPError(app.NameUserAlreadyExists, app.MsgUserAlreadyExists, http.StatusBadRequest)
	ErrNotAllowed         = models.NewHTTPError(app.NameNotAllowed, app.MsgNotAllowed, http.StatusBadRequest)
	ErrUserNotFound       = models.NewHTTPError(app.NameUserNotFound, app.MsgUserNotFound, http.StatusNotFound)
	ErrAlreadyVerified    = models.NewHTTPError(app.NameAlreadyVerified, app.MsgAlreadyVerified, http.StatusBadRequest)
	ErrCodeNotFound       = models.NewHTTPError(app.NameCodeNotFound, app.MsgCodeNotFound, http.StatusNotFound)
	ErrInvalidCode        = models.NewHTTPError(app.NameInvalidCode, app.MsgCodeMismatch, http.StatusBadRequest)
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrPasswordHashing       = errors.New("password hashing failed")
	ErrCodeGeneration        = errors.New("verification code generation failed")
	ErrEligibilityCheck      = errors.New("criminal records check failed")
	ErrSendingEmail          = errors.New("error sending verification email")
)
