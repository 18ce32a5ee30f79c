// Package store provides document-store access for all pressroom
// entities. It wraps the MongoDB driver with a small generic collection
// contract — find, insert, update, delete, list — plus typed stores for
// each entity, translating driver errors into the modeled outcome kinds.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a pooled client for the given connection string and
// verifies it with a ping before returning. The pool is sized small:
// every request performs a short linear sequence of store calls.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMinPoolSize(2).
		SetMaxPoolSize(10)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store ping: %w", err)
	}

	slog.Info("document store connected")
	return client, nil
}
