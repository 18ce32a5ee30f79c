// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pressroom/internal/schema"
)

// Modeled store outcomes. Callers select on these with errors.Is; any
// other error from this package is an unexpected store fault.
var (
	// ErrNotFound is returned when a filter does not match exactly one
	// document.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a write violates a declared
	// uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNoChange is returned when an update matched a document but
	// modified nothing. A no-op update is a conflict, not a success.
	ErrNoChange = errors.New("update changed nothing")
)

// ParseID converts the wire representation of a document identifier back
// to the store's native type. An invalid string is a validation error,
// never a crash.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, schema.Invalid("id", "not a valid object identifier")
	}
	return id, nil
}

// findOne fetches the single document matching filter. The count is
// checked first: anything other than exactly one match is ErrNotFound.
func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	n, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	if n != 1 {
		return nil, ErrNotFound
	}

	var record T
	if err := coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	return &record, nil
}

// insertOne writes a new document and returns its store-assigned
// identifier. Uniqueness violations surface as ErrDuplicateKey.
func insertOne(ctx context.Context, coll *mongo.Collection, record any) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateKey
		}
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", coll.Name(), res.InsertedID)
	}
	return id, nil
}

// updateOne applies a partial-field $set. Success requires a matched
// count of one and a modified count of one: no match is ErrNotFound, a
// matched no-op is ErrNoChange.
func updateOne(ctx context.Context, coll *mongo.Collection, filter, set bson.M) error {
	res, err := coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount != 1 {
		return ErrNotFound
	}
	if res.ModifiedCount != 1 {
		return ErrNoChange
	}
	return nil
}

// deleteOne removes the single document matching filter.
func deleteOne(ctx context.Context, coll *mongo.Collection, filter bson.M) error {
	res, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// list returns every document matching filter in store order, optionally
// narrowed to a projection.
func list[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, projection bson.M) ([]T, error) {
	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return records, nil
}
