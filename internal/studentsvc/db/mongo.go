package db

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/avvvet/student-services/internal/studentsvc/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultDatabase = "students"

// ConnectMongo returns a usable database handle even when the ping fails,
// the driver keeps trying to reach the server on later operations.
func ConnectMongo(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	dbName, err := DatabaseName(cfg.URI)
	if err != nil {
		return nil, err
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.Timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	db := client.Database(dbName)

	if err := client.Ping(ctx, nil); err != nil {
		return db, fmt.Errorf("ping mongodb: %w", err)
	}

	return db, nil
}

// DatabaseName takes the database from the URI path.
func DatabaseName(mongoURI string) (string, error) {
	uri, err := url.Parse(mongoURI)
	if err != nil {
		return "", fmt.Errorf("parse mongodb uri: %w", err)
	}

	dbName := strings.TrimPrefix(uri.Path, "/")
	if dbName == "" {
		return defaultDatabase, nil
	}
	return dbName, nil
}

// CreatePRNIndex adds a lookup index on prn. It is deliberately not unique.
func CreatePRNIndex(ctx context.Context, coll *mongo.Collection) error {
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "prn", Value: 1}},
		Options: options.Index().SetName("prn_1"),
	}

	if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("create prn index: %w", err)
	}
	return nil
}

func Disconnect(ctx context.Context, db *mongo.Database) error {
	if db == nil {
		return nil
	}
	return db.Client().Disconnect(ctx)
}
