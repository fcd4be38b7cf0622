// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Field validation failures. They are client errors and are written to the
// response as-is.
var (
	ErrInvalidEmail    = models.NewHTTPError(app.NameValidationError, app.MsgInvalidEmail, http.StatusBadRequest)
	ErrInvalidPassword = models.NewHTTPError(app.NameValidationError, app.MsgInvalidPassword, http.StatusBadRequest)
	ErrPasswordTooLong = models.NewHTTPError(app.NameValidationError, app.MsgPasswordTooLong, http.StatusBadRequest)
	ErrInvalidRut      = models.NewHTTPError(app.NameValidationError, app.MsgInvalidRut, http.StatusBadRequest)
	ErrInvalidCode     = models.NewHTTPError(app.NameValidationError, app.MsgInvalidCode, http.StatusBadRequest)
)
