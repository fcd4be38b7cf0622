// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPError_JSONShape(t *testing.T) {
	err := NewHTTPError("TestError", "This is a test error", http.StatusBadRequest)

	b, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	assert.JSONEq(t, `{"name":"TestError","msg":"This is a test error","statusCode":400}`, string(b))
}

func TestHTTPError_Error(t *testing.T) {
	err := NewHTTPError("BlockedUser", "User is blocked", http.StatusForbidden)
	assert.Equal(t, "BlockedUser: User is blocked", err.Error())
}

func TestIsBusinessError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"404 is business", NewHTTPError("NotFound", "x", http.StatusNotFound), true},
		{"400 is business", NewHTTPError("Validation", "x", http.StatusBadRequest), true},
		{"499 upper bound", NewHTTPError("Edge", "x", 499), true},
		{"500 is not business", NewHTTPError("Internal", "x", http.StatusInternalServerError), false},
		{"399 is not business", NewHTTPError("Edge", "x", 399), false},
		{"wrapped business error", fmt.Errorf("ctx: %w", NewHTTPError("Conflict", "x", http.StatusBadRequest)), true},
		{"plain error has no status", errors.New("Internal server error"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBusinessError(tt.err))
		})
	}
}

func TestUser_HasPendingCode(t *testing.T) {
	empty := ""
	code := "123456"

	assert.False(t, User{}.HasPendingCode())
	assert.False(t, User{Code: &empty}.HasPendingCode())
	assert.True(t, User{Code: &code}.HasPendingCode())
}
