// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// All violated groups are reported at once, joined with [errors.Join].
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 || cfg.App.PasswordHashCost <= 0 {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" || cfg.Storage.Mongo.Database == "" || cfg.Storage.Mongo.Collection == "" {
			err = errors.Join(err, ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			err = errors.Join(err, ErrInvalidStorageConfigs)
		}
	default:
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		err = errors.Join(err, ErrInvalidServerConfigs)
	}

	switch cfg.Adapter.Notification.Kind {
	case NotificationLog:
	case NotificationSMTP:
		if cfg.Adapter.Notification.SMTPHost == "" || cfg.Adapter.Notification.From == "" {
			err = errors.Join(err, ErrInvalidAdapterConfigs)
		}
	case NotificationHTTP:
		if cfg.Adapter.Notification.BaseURL == "" {
			err = errors.Join(err, ErrInvalidAdapterConfigs)
		}
	default:
		err = errors.Join(err, ErrInvalidAdapterConfigs)
	}

	return err
}
