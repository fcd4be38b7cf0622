// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists user records in MongoDB, PostgreSQL or SQLite.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// Storages owns the connection of the selected backend and the repositories
// built on top of it.
type Storages struct {
	UserRepository UserRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// NewStorages connects to the backend chosen by cfg.Driver. SQL backends are
// migrated before use; the Mongo backend gets its unique indexes.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		db, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository: NewMongoUserRepository(db.Collection, log),
			ping: func(ctx context.Context) error {
				return db.Client.Ping(ctx, nil)
			},
			close: db.Client.Disconnect,
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		connect := NewConnectPostgres
		if cfg.Driver == config.DriverSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			_ = db.Close()
			return nil, err
		}
		return newSQLStorages(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

func newSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewSQLUserRepository(db, utils.NewUUIDGenerator(), log),
		ping:           db.PingContext,
		close: func(context.Context) error {
			return db.Close()
		},
	}
}

// Ping checks that the backend answers.
func (s *Storages) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
