// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"time"

	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

type jwtTokenManager struct {
	issuer   string
	duration time.Duration
	signKey  string
}

// NewTokenManager returns an HS256 JWT [TokenManager].
func NewTokenManager(issuer string, duration time.Duration, signKey string) TokenManager {
	return &jwtTokenManager{
		issuer:   issuer,
		duration: duration,
		signKey:  signKey,
	}
}

func (m *jwtTokenManager) Issue(userID string) (models.Token, error) {
	return utils.GenerateJWTToken(m.issuer, userID, m.duration, m.signKey)
}

func (m *jwtTokenManager) Parse(tokenString string) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, m.signKey, m.issuer)
}
