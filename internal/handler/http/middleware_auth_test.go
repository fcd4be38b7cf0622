// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newJSONRequest builds a request carrying a nop logger in its context.
func newJSONRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(logger.Nop().WithContext(req.Context()))
}

func serve(fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fn(rec, req)
	return rec
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := newJSONRequest(http.MethodPost, "/verify", "")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)
	return rec
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(deps testDeps)
		wantNext   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"name":"Unauthorized","msg":"empty ` + "`Authorization`" + ` header","statusCode":401}}`,
		},
		{
			name:       "not a bearer header",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"name":"Unauthorized","msg":"invalid ` + "`Authorization`" + ` header","statusCode":401}}`,
		},
		{
			name:       "bearer without token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":{"name":"Unauthorized","msg":"invalid ` + "`Authorization`" + ` header","statusCode":401}}`,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(deps testDeps) {
				deps.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{},
					&utils.TokenError{Name: utils.TokenExpiredErrorName, Message: "jwt expired"})
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":{"name":"TokenExpiredError","msg":"jwt expired","statusCode":403}}`,
		},
		{
			name:   "bad signature",
			header: "Bearer forged",
			setup: func(deps testDeps) {
				deps.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{},
					&utils.TokenError{Name: utils.JSONWebTokenErrorName, Message: "invalid signature"})
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":{"name":"JsonWebTokenError","msg":"invalid signature","statusCode":403}}`,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(deps testDeps) {
				deps.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: "user-1"}, nil)
			},
			wantNext:   true,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestDeps(t)
			if tt.setup != nil {
				tt.setup(deps)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rec := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantNext, nextCalled)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuth_UserIDInContext(t *testing.T) {
	h, deps := newTestDeps(t)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: "user-42"}, nil)

	var gotUserID string
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = utils.GetUserIDFromContext(r.Context())
	})

	executeAuth(h, "Bearer good", next)

	require.True(t, gotOK)
	assert.Equal(t, "user-42", gotUserID)
}

func TestAuth_UnexpectedParseError(t *testing.T) {
	h, deps := newTestDeps(t)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{}, errors.New("keyring unavailable"))

	rec := executeAuth(h, "Bearer tok", http.NotFoundHandler())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"keyring unavailable"}`, rec.Body.String())
}

func TestAuth_ConcurrentRequests(t *testing.T) {
	h, deps := newTestDeps(t)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: "user-1"}, nil).Times(20)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	var wg sync.WaitGroup
	codes := make([]int, 20)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = executeAuth(h, "Bearer good", next).Code
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.Equal(t, http.StatusNoContent, code)
	}
}
