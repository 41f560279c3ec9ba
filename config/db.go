package config

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var db *mongo.Database

// ConnectDB establishes the MongoDB connection and verifies it with a ping.
func ConnectDB(cfg *Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("pinging mongodb: %w", err)
	}

	db = client.Database(cfg.Mongo.Database)
	return nil
}

// GetCollection returns a handle to the named collection.
func GetCollection(name string) *mongo.Collection {
	return db.Collection(name)
}

// Ping verifies the database connection is alive.
func Ping(ctx context.Context) error {
	return db.Client().Ping(ctx, readpref.Primary())
}

// Disconnect closes the client connection.
func Disconnect(ctx context.Context) error {
	return db.Client().Disconnect(ctx)
}

// EnsureIndexes creates the unique indexes the schemas rely on: blog slugs
// and user emails.
func EnsureIndexes(ctx context.Context) error {
	_, err := GetCollection("blogs").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating blog slug index: %w", err)
	}

	_, err = GetCollection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating user email index: %w", err)
	}
	return nil
}
