// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a relational connection together with its dialect specifics.
type DB struct {
	*sql.DB
	errorClassifier ErrorClassifier
	placeholder     sq.PlaceholderFormat
	dialect         string
	logger          *logger.Logger
}

// Migrate applies the embedded schema migrations for the DB dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
