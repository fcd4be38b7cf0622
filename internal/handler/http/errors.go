// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = models.NewHTTPError(app.NameUnauthorized, app.MsgEmptyAuthorizationHeader, http.StatusUnauthorized)

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = models.NewHTTPError(app.NameUnauthorized, app.MsgInvalidAuthorizationHeader, http.StatusUnauthorized)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = models.NewHTTPError(app.NameValidationError, app.MsgInvalidJSON, http.StatusBadRequest)
)
