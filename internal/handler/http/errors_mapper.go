// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

// writeError shapes err into an error response:
//   - *models.HTTPError → its status, {"error": {"name", "msg", "statusCode"}};
//   - *utils.TokenError → 403 with the same object shape;
//   - anything else → 500, {"error": "<err.Error()>"}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var httpErr *models.HTTPError
	if errors.As(err, &httpErr) {
		event := log.Error()
		if models.IsBusinessError(httpErr) {
			event = log.Warn()
		}
		event.Err(err).Int("status", httpErr.StatusCode).Msg("request rejected")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: httpErr}, httpErr.StatusCode)
		return
	}

	var tokenErr *utils.TokenError
	if errors.As(err, &tokenErr) {
		log.Warn().Err(err).Msg("token verification failed")
		shaped := models.NewHTTPError(tokenErr.Name, tokenErr.Message, http.StatusForbidden)
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: shaped}, http.StatusForbidden)
		return
	}

	log.Err(err).Msg("unexpected error")
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
}

// decodeRequest reads the JSON body into dst. An empty body leaves dst zero
// so validation reports the first missing field. A type mismatch on a
// validated field is reported as that field's validation error.
func decodeRequest(r *http.Request, dst any) error {
	err := utils.DecodeJSON(r.Body, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if fieldErr := validators.FieldError(typeErr.Field); !errors.Is(fieldErr, validators.ErrUnknownField) {
			return fieldErr
		}
	}

	return ErrInvalidJSON
}
