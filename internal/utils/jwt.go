// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token error names reported to clients.
const (
	TokenExpiredErrorName = "TokenExpiredError"
	JSONWebTokenErrorName = "JsonWebTokenError"
)

// TokenError is returned by [ValidateAndParseJWTToken] when a token cannot
// be trusted. Name is either [TokenExpiredErrorName] or [JSONWebTokenErrorName].
type TokenError struct {
	Name    string
	Message string
	Err     error
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

func newTokenError(err error) *TokenError {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &TokenError{Name: TokenExpiredErrorName, Message: "jwt expired", Err: err}
	case errors.Is(err, jwt.ErrTokenMalformed):
		return &TokenError{Name: JSONWebTokenErrorName, Message: "jwt malformed", Err: err}
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return &TokenError{Name: JSONWebTokenErrorName, Message: "invalid signature", Err: err}
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return &TokenError{Name: JSONWebTokenErrorName, Message: "jwt issuer invalid", Err: err}
	default:
		return &TokenError{Name: JSONWebTokenErrorName, Message: "invalid token", Err: err}
	}
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-user-auth", "6650f0c2a1", time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HMAC only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// Every failure is returned as a *[TokenError].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return models.Token{}, newTokenError(err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, &TokenError{Name: JSONWebTokenErrorName, Message: "jwt subject missing", Err: err}
	}

	return models.Token{Token: token, RegisteredClaims: claims.RegisteredClaims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
