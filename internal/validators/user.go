// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-user-auth/models"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON names of the request bodies.
const (
	// FieldEmail targets the e-mail address of a login or register request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"

	// FieldRut targets the national identification number.
	FieldRut = "rut"

	// FieldCode targets the 6-digit verification code.
	FieldCode = "code"
)

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

var codePattern = regexp.MustCompile(`^[0-9]{6}$`)

// UserValidator validates the bodies of the login, register and verify
// requests. It never touches storage.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.VerifyRequest:
		return v.validateVerifyRequest(value, fields...)
	case *models.VerifyRequest:
		return v.validateVerifyRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// FieldError returns the validation error reported for field. Transport
// code uses it when a JSON value has the wrong type for field.
func FieldError(field string) error {
	switch field {
	case FieldEmail:
		return ErrInvalidEmail
	case FieldPassword:
		return ErrInvalidPassword
	case FieldRut:
		return ErrInvalidRut
	case FieldCode:
		return ErrInvalidCode
	default:
		return ErrUnknownField
	}
}

func (v *UserValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRut, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldRut:
			if strings.TrimSpace(request.Rut) == "" {
				return ErrInvalidRut
			}
		case FieldEmail:
			if !isValidEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrInvalidPassword
			}
			if len(request.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateVerifyRequest(request models.VerifyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCode}
	}

	for _, f := range fields {
		switch f {
		case FieldCode:
			if !codePattern.MatchString(request.Code) {
				return ErrInvalidCode
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare address only: no display name and no
// surrounding whitespace.
func isValidEmail(email string) bool {
	if email == "" || strings.TrimSpace(email) != email {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email && addr.Name == "" && strings.Contains(addr.Address, "@")
}
