// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
	sq "github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "name", "email", "rut", "password", "verified", "code", "blocked", "created_at"}

// IDGenerator produces primary keys for new rows.
type IDGenerator interface {
	Generate() string
}

// sqlUserRepository is the relational implementation of [UserRepository]
// shared by PostgreSQL and SQLite. Dialect differences are limited to the
// placeholder format and the error classifier carried by [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sqlUserRepository struct {
	db  *DB
	ids IDGenerator
}

// NewSQLUserRepository constructs a [UserRepository] backed by db.
func NewSQLUserRepository(db *DB, ids IDGenerator, log *logger.Logger) UserRepository {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql user repository")
	return &sqlUserRepository{
		db:  db,
		ids: ids,
	}
}

func (r *sqlUserRepository) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(r.db.placeholder)
}

// CreateUser inserts user with a fresh UUIDv7 id.
//
// Error handling:
//   - unique violation on e-mail or rut → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *sqlUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.ID = r.ids.Generate()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := r.builder().
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.Rut, user.PasswordHash, user.Verified, user.Code, user.Blocked, user.CreatedAt).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			log.Debug().Str("func", "*sqlUserRepository.CreateUser").Msg("unique constraint violated")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *sqlUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "FindUserByEmail", sq.Expr("lower(email) = lower(?)", email))
}

func (r *sqlUserRepository) FindUserByEmailOrRut(ctx context.Context, email, rut string) (models.User, error) {
	return r.findOne(ctx, "FindUserByEmailOrRut", sq.Or{
		sq.Expr("lower(email) = lower(?)", email),
		sq.Expr("lower(rut) = lower(?)", rut),
	})
}

func (r *sqlUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, "FindUserByID", sq.Eq{"id": id})
}

// MarkUserVerified sets verified and clears code with one UPDATE.
func (r *sqlUserRepository) MarkUserVerified(ctx context.Context, id string) error {
	query, args, err := r.builder().
		Update(models.User{}.TableName()).
		Set("verified", true).
		Set("code", nil).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "MarkUserVerified", query, args)
}

func (r *sqlUserRepository) DeleteUser(ctx context.Context, id string) error {
	query, args, err := r.builder().
		Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "DeleteUser", query, args)
}

func (r *sqlUserRepository) findOne(ctx context.Context, op string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user models.User
		code sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Rut, &user.PasswordHash,
		&user.Verified, &code, &user.Blocked, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository."+op).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if code.Valid {
		user.Code = &code.String
	}

	return user, nil
}

func (r *sqlUserRepository) execAffectingOne(ctx context.Context, op, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository."+op).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
