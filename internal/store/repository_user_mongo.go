// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userDocument is the stored form of [models.User].
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Rut       string             `bson:"rut"`
	Password  string             `bson:"password"`
	Verified  bool               `bson:"verified"`
	Code      *string            `bson:"code"`
	Blocked   bool               `bson:"blocked"`
	CreatedAt time.Time          `bson:"created_at"`
}

func newUserDocument(user models.User) userDocument {
	return userDocument{
		Name:      user.Name,
		Email:     user.Email,
		Rut:       user.Rut,
		Password:  user.PasswordHash,
		Verified:  user.Verified,
		Code:      user.Code,
		Blocked:   user.Blocked,
		CreatedAt: user.CreatedAt,
	}
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Rut:          d.Rut,
		PasswordHash: d.Password,
		Verified:     d.Verified,
		Code:         d.Code,
		Blocked:      d.Blocked,
		CreatedAt:    d.CreatedAt,
	}
}

// mongoUserRepository is the MongoDB implementation of [UserRepository].
type mongoUserRepository struct {
	collection *mongo.Collection
}

// NewMongoUserRepository constructs a [UserRepository] over collection.
// The collection must carry the indexes created by [EnsureUserIndexes].
func NewMongoUserRepository(collection *mongo.Collection, log *logger.Logger) UserRepository {
	log.Debug().Str("collection", collection.Name()).Msg("creating mongo user repository")
	return &mongoUserRepository{collection: collection}
}

// equalFold matches a whole string value ignoring case.
func equalFold(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}

// CreateUser inserts user and returns it with the ObjectID assigned by the
// driver. A duplicate key error becomes [ErrUserAlreadyExists].
func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	doc := newUserDocument(user)
	doc.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug().Str("func", "*mongoUserRepository.CreateUser").Msg("duplicate key")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.ID = doc.ID.Hex()
	return user, nil
}

func (r *mongoUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "FindUserByEmail", bson.M{"email": equalFold(email)})
}

func (r *mongoUserRepository) FindUserByEmailOrRut(ctx context.Context, email, rut string) (models.User, error) {
	return r.findOne(ctx, "FindUserByEmailOrRut", bson.M{"$or": bson.A{
		bson.M{"email": equalFold(email)},
		bson.M{"rut": equalFold(rut)},
	}})
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	return r.findOne(ctx, "FindUserByID", bson.M{"_id": objectID})
}

// MarkUserVerified sets verified and unsets the code with one update.
func (r *mongoUserRepository) MarkUserVerified(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"verified": true, "code": nil}},
	)
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.MarkUserVerified").Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *mongoUserRepository) DeleteUser(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrUserNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if res.DeletedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *mongoUserRepository) findOne(ctx context.Context, op string, filter bson.M) (models.User, error) {
	log := logger.FromContext(ctx)

	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*mongoUserRepository."+op).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc.toModel(), nil
}
