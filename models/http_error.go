// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// HTTPError is the single domain error type of the application.
//
// It carries a machine-readable Name, a human-readable Message and the HTTP
// status code the transport layer responds with. The JSON form is what clients
// receive under the "error" key of every error response.
type HTTPError struct {
	// Name identifies the kind of failure, e.g. "ValidationError" or "BlockedUser".
	Name string `json:"name"`

	// Message is the human-readable description of the failure.
	Message string `json:"msg"`

	// StatusCode is the HTTP status the error maps to.
	StatusCode int `json:"statusCode"`
}

// NewHTTPError constructs an [HTTPError].
func NewHTTPError(name, message string, statusCode int) *HTTPError {
	return &HTTPError{
		Name:       name,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// IsBusinessError reports whether err is (or wraps) an [HTTPError] with a
// client-side status code (400-499).
//
// Errors without a status code, and server-side errors, are not business errors.
func IsBusinessError(err error) bool {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}

	return httpErr.StatusCode >= 400 && httpErr.StatusCode <= 499
}
