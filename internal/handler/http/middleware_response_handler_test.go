// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.False(t, w.wroteHeader)
	assert.Zero(t, w.size)
	assert.Equal(t, http.StatusOK, w.Status())
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name   string
		codes  []int
		want   int
		wantRR int
	}{
		{name: "single call", codes: []int{http.StatusCreated}, want: http.StatusCreated, wantRR: http.StatusCreated},
		{name: "second call ignored", codes: []int{http.StatusForbidden, http.StatusOK}, want: http.StatusForbidden, wantRR: http.StatusForbidden},
		{name: "server error", codes: []int{http.StatusInternalServerError}, want: http.StatusInternalServerError, wantRR: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.codes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.want, w.Status())
			assert.Equal(t, tt.wantRR, rr.Code)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte(`{"id":`))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	n, err = w.Write([]byte(`"1"}`))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.Status())
	assert.Equal(t, 10, w.size)
	assert.Equal(t, `{"id":"1"}`, rr.Body.String())
}

func TestResponseWriter_WriteAfterExplicitHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	_, err := w.Write([]byte("ok"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, http.StatusCreated, w.Status())
}

func TestResponseWriter_ProxiesHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Trace-ID", "abc")

	assert.Equal(t, "abc", rr.Header().Get("X-Trace-ID"))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
	assert.NoError(t, http.NewResponseController(w).Flush())
}
