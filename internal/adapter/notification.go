// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

const verificationSubject = app.MsgVerificationEmailSubject

// Email is a single outgoing message.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func verificationEmail(to, code string) Email {
	return Email{
		To:      to,
		Subject: verificationSubject,
		Body:    fmt.Sprintf("Your verification code is %s.", code),
	}
}

// NewNotificationAdapter builds the sender selected by cfg.Kind.
func NewNotificationAdapter(cfg config.Notification, log *logger.Logger) (NotificationAdapter, error) {
	switch cfg.Kind {
	case config.NotificationSMTP:
		return NewSMTPNotificationAdapter(cfg, log)
	case config.NotificationHTTP:
		return NewHTTPNotificationAdapter(cfg, log)
	case config.NotificationLog, "":
		return NewLogNotificationAdapter(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotificationKind, cfg.Kind)
	}
}

type logNotificationAdapter struct {
	logger *logger.Logger
}

// NewLogNotificationAdapter returns a [NotificationAdapter] that only writes
// the message to the log. Intended for local development.
func NewLogNotificationAdapter(log *logger.Logger) NotificationAdapter {
	return &logNotificationAdapter{logger: log}
}

func (a *logNotificationAdapter) SendVerificationEmail(ctx context.Context, to, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	email := verificationEmail(to, code)
	logger.FromContext(ctx).Info().
		Str("to", email.To).
		Str("subject", email.Subject).
		Str("code", code).
		Msg("verification e-mail (log sender)")

	return nil
}
