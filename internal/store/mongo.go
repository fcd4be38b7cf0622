// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// caseInsensitive is the collation of the unique e-mail and rut indexes.
// Strength 2 compares base letters and accents but ignores case.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// MongoDB is a connected client together with the users collection.
type MongoDB struct {
	Client     *mongo.Client
	Collection *mongo.Collection
}

// NewConnectMongo connects to MongoDB, pings the primary and makes sure the
// unique indexes of the users collection exist.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongodb")
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error pinging mongodb")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)
	if err = EnsureUserIndexes(ctx, collection); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating indexes")
		_ = client.Disconnect(ctx)
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Str("collection", cfg.Collection).Msg("connected to mongodb successfully")

	return &MongoDB{Client: client, Collection: collection}, nil
}

// EnsureUserIndexes creates the case-insensitive unique indexes on e-mail
// and rut. Creating an index that already exists is a no-op.
func EnsureUserIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("users_email_unique").SetUnique(true).SetCollation(caseInsensitive),
		},
		{
			Keys:    bson.D{{Key: "rut", Value: 1}},
			Options: options.Index().SetName("users_rut_unique").SetUnique(true).SetCollation(caseInsensitive),
		},
	})
	if err != nil {
		return fmt.Errorf("error creating user indexes: %w", err)
	}

	return nil
}
