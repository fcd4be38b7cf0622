// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "http error",
			err:        models.NewHTTPError("BlockedUser", "User is blocked", http.StatusForbidden),
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":{"name":"BlockedUser","msg":"User is blocked","statusCode":403}}`,
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("login: %w", validators.ErrInvalidEmail),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"name":"ValidationError","msg":"email is required and must be a valid email address","statusCode":400}}`,
		},
		{
			name:       "token error",
			err:        &utils.TokenError{Name: utils.TokenExpiredErrorName, Message: "jwt expired"},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":{"name":"TokenExpiredError","msg":"jwt expired","statusCode":403}}`,
		},
		{
			name:       "plain error",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"connection reset"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		want    models.RegisterRequest
	}{
		{
			name: "valid",
			body: `{"name":"John","rut":"1"}`,
			want: models.RegisterRequest{Name: "John", Rut: "1"},
		},
		{
			name: "empty body leaves zero value",
			body: "",
		},
		{
			name: "unknown fields ignored",
			body: `{"rut":"1","extra":true}`,
			want: models.RegisterRequest{Rut: "1"},
		},
		{
			name:    "validated field of wrong type",
			body:    `{"email":42}`,
			wantErr: validators.ErrInvalidEmail,
		},
		{
			name:    "unvalidated field of wrong type",
			body:    `{"name":42}`,
			wantErr: ErrInvalidJSON,
		},
		{
			name:    "array body",
			body:    `[1,2]`,
			wantErr: ErrInvalidJSON,
		},
		{
			name:    "truncated",
			body:    `{"rut":`,
			wantErr: ErrInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))

			var got models.RegisterRequest
			err := decodeRequest(req, &got)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
