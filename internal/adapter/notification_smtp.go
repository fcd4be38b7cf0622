// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpNotificationAdapter struct {
	addr     string
	auth     smtp.Auth
	from     mail.Address
	sendMail sendMailFunc
}

// NewSMTPNotificationAdapter constructs a [NotificationAdapter] delivering
// through an SMTP relay with PLAIN authentication when a username is set.
func NewSMTPNotificationAdapter(cfg config.Notification, log *logger.Logger) (NotificationAdapter, error) {
	if cfg.SMTPHost == "" {
		return nil, ErrMissingSMTPConfiguration
	}

	from, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", cfg.From, err)
	}

	var auth smtp.Auth
	if cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost)
	}

	addr := net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort))
	log.Debug().Str("addr", addr).Msg("creating smtp sender")

	return &smtpNotificationAdapter{
		addr:     addr,
		auth:     auth,
		from:     *from,
		sendMail: smtp.SendMail,
	}, nil
}

func (a *smtpNotificationAdapter) SendVerificationEmail(ctx context.Context, to, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	email := verificationEmail(to, code)
	if err := a.sendMail(a.addr, a.auth, a.from.Address, []string{email.To}, a.message(email)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*smtpNotificationAdapter.SendVerificationEmail").Msg("failed to send e-mail")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (a *smtpNotificationAdapter) message(email Email) []byte {
	var b strings.Builder
	b.WriteString("From: " + a.from.String() + "\r\n")
	b.WriteString("To: " + email.To + "\r\n")
	b.WriteString("Subject: " + email.Subject + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(email.Body + "\r\n")
	return []byte(b.String())
}
