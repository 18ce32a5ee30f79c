// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sync creates each registered collection if absent, applies its strict
// validator and creates its declared indexes. It is idempotent: running
// it against an already-synced database changes nothing and returns no
// error. A failure here means the store and the declared shapes disagree
// — writes could corrupt data silently — so callers must treat any error
// as fatal and abort startup.
func Sync(ctx context.Context, db *mongo.Database) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	for _, def := range All {
		if !slices.Contains(existing, def.Collection) {
			if err := db.CreateCollection(ctx, def.Collection); err != nil {
				return fmt.Errorf("create collection %s: %w", def.Collection, err)
			}
		}

		cmd := bson.D{
			{Key: "collMod", Value: def.Collection},
			{Key: "validator", Value: def.Validator()},
			{Key: "validationLevel", Value: "strict"},
		}
		if err := db.RunCommand(ctx, cmd).Err(); err != nil {
			return fmt.Errorf("apply validator to %s: %w", def.Collection, err)
		}

		if len(def.Indexes) > 0 {
			if _, err := db.Collection(def.Collection).Indexes().CreateMany(ctx, def.Indexes); err != nil {
				return fmt.Errorf("create indexes on %s: %w", def.Collection, err)
			}
		}

		slog.Info("collection synced", "collection", def.Collection, "indexes", len(def.Indexes))
	}

	return nil
}
