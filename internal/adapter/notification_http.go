// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

type httpNotificationAdapter struct {
	client *utils.HTTPClient
}

// NewHTTPNotificationAdapter constructs a [NotificationAdapter] posting
// messages to POST {BaseURL}/emails of a notification service.
func NewHTTPNotificationAdapter(cfg config.Notification, log *logger.Logger) (NotificationAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid notification service address: %w", err)
	}

	log.Debug().Str("base_url", baseURL).Msg("creating notification service client")
	return &httpNotificationAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
	}, nil
}

func (a *httpNotificationAdapter) SendVerificationEmail(ctx context.Context, to, code string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(verificationEmail(to, code)).
		Post("/emails")
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}

	return mapHTTPError(resp)
}
