// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts l into the request context the same way withTraceID does.
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return injectLogger(req, zerolog.New(buf))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		handlerDelay     time.Duration
		checkLogContains []string
	}{
		{
			name:            "login 200",
			method:          http.MethodPost,
			path:            "/login",
			handlerStatus:   http.StatusOK,
			handlerResponse: `{"token":"t"}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"POST"`,
				`"uri":"/login"`,
				`"status":200`,
				`"size":13`,
				`"duration":`,
				`"remote_addr":"192.0.2.1:1234"`,
			},
		},
		{
			name:            "register 201",
			method:          http.MethodPost,
			path:            "/register",
			handlerStatus:   http.StatusCreated,
			handlerResponse: `{"id":"1"}`,
			checkLogContains: []string{
				`"uri":"/register"`,
				`"status":201`,
			},
		},
		{
			name:            "client error stays at info",
			method:          http.MethodPost,
			path:            "/verify",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: `{"error":{}}`,
			checkLogContains: []string{
				`"level":"info"`,
				`"status":400`,
			},
		},
		{
			name:            "server error logged as error",
			method:          http.MethodPost,
			path:            "/register",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: `{"error":"boom"}`,
			checkLogContains: []string{
				`"level":"error"`,
				`"status":500`,
			},
		},
		{
			name:            "query string preserved",
			method:          http.MethodGet,
			path:            "/version?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "v1",
			checkLogContains: []string{
				`"uri":"/version?verbose=1"`,
			},
		},
		{
			name:            "slow handler",
			method:          http.MethodGet,
			path:            "/version",
			handlerStatus:   http.StatusOK,
			handlerResponse: "v1",
			handlerDelay:    20 * time.Millisecond,
			checkLogContains: []string{
				`"duration":`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerDelay > 0 {
					time.Sleep(tt.handlerDelay)
				}
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rec.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rec := httptest.NewRecorder()
	h.withLogging(next).ServeHTTP(rec, makeRequest(http.MethodGet, "/version", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
	assert.Contains(t, logBuf.String(), `"size":0`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("handler exploded")
	})

	assert.Panics(t, func() {
		h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &logBuf))
	})
}
