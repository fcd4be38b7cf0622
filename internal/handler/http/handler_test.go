// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/mock"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testDeps bundles the mocked services a Handler is built from.
type testDeps struct {
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
}

func newTestDeps(t *testing.T) (*Handler, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	svcs := &service.Services{
		AuthService:    deps.auth,
		AppInfoService: deps.appInfo,
	}

	return NewHandler(svcs, logger.Nop()), deps
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// decodeErrorBody returns the "error" object of an error response.
func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) models.HTTPError {
	t.Helper()

	var body struct {
		Error models.HTTPError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_Defaults(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.IsType(t, &validators.UserValidator{}, h.validator)
	assert.Nil(t, h.metrics)
	assert.Zero(t, h.requestTimeout)
}

func TestNewHandler_Options(t *testing.T) {
	ctrl := gomock.NewController(t)
	v := mock.NewMockValidator(ctrl)
	metricsHandler := http.NotFoundHandler()

	h := NewHandler(&service.Services{}, logger.Nop(),
		WithValidator(v),
		WithMetrics(metricsHandler),
		WithRequestTimeout(3*time.Second),
	)

	assert.Same(t, v, h.validator)
	assert.NotNil(t, h.metrics)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_PublicRoutesReachHandlers(t *testing.T) {
	h, deps := newTestDeps(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")
	router := h.Init()

	// invalid bodies stop at validation, which proves the route exists
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/login", http.StatusBadRequest},
		{http.MethodPost, "/register", http.StatusBadRequest},
		{http.MethodGet, "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := doRequest(t, router, tt.method, tt.path, `{}`, nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestInit_VerifyRequiresAuthorization(t *testing.T) {
	h, _ := newTestDeps(t)
	router := h.Init()

	rec := doRequest(t, router, http.MethodPost, "/verify", `{"code":"123456"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized", decodeErrorBody(t, rec).Name)
}

func TestInit_VerifyWithValidToken(t *testing.T) {
	h, deps := newTestDeps(t)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "good-token").Return(models.Token{UserID: "user-1"}, nil)
	deps.auth.EXPECT().Verify(gomock.Any(), models.VerifyRequest{UserID: "user-1", Code: "123456"}).Return(nil)
	router := h.Init()

	rec := doRequest(t, router, http.MethodPost, "/verify", `{"code":"123456"}`,
		map[string]string{"Authorization": "Bearer good-token"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"response":"User verified successfully"}`, rec.Body.String())
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestDeps(t)
	router := h.Init()

	rec := doRequest(t, router, http.MethodGet, "/nonexistent", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decodeErrorBody(t, rec).Name)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestDeps(t)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/login"},
		{http.MethodPut, "/register"},
		{http.MethodGet, "/verify"},
		{http.MethodPost, "/version"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_MetricsRoute(t *testing.T) {
	t.Run("registered when a handler is given", func(t *testing.T) {
		metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("# metrics"))
		})
		h := NewHandler(&service.Services{}, logger.Nop(), WithMetrics(metricsHandler))

		rec := doRequest(t, h.Init(), http.MethodGet, "/metrics", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "# metrics", rec.Body.String())
	})

	t.Run("absent without a handler", func(t *testing.T) {
		h := NewHandler(&service.Services{}, logger.Nop())

		rec := doRequest(t, h.Init(), http.MethodGet, "/metrics", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newTestDeps(t)
	router := h.Init()

	rec := doRequest(t, router, http.MethodGet, "/nonexistent", "", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = doRequest(t, router, http.MethodGet, "/nonexistent", "", map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	h, deps := newTestDeps(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).DoAndReturn(func(_ any) string {
		panic("boom")
	})
	router := h.Init()

	rec := doRequest(t, router, http.MethodGet, "/version", "", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
