// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if the document store is not
// available.
package store

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pressroom/internal/schema"
)

// testURI returns the document store connection string for testing.
// Uses an environment variable with a default matching docker-compose.yml.
func testURI() string {
	if v := os.Getenv("MONGO_URI"); v != "" {
		return v
	}
	return "mongodb://localhost:27017"
}

// testDB connects to the test database and syncs the collection schemas.
// If the store is unavailable, the test is skipped. A cleanup function
// is registered to close the connection when the test finishes.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Connect(ctx, testURI())
	if err != nil {
		t.Skipf("skipping integration test: store not reachable: %v", err)
	}

	db := client.Database("pressroom_test")
	if err := schema.Sync(ctx, db); err != nil {
		client.Disconnect(ctx)
		t.Fatalf("failed to sync collection schemas: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Disconnect(ctx)
	})
	return db
}

// cleanUsers removes test users by username. Call in t.Cleanup().
func cleanUsers(t *testing.T, db *mongo.Database, usernames ...string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db.Collection(schema.Users.Collection).DeleteMany(ctx,
		bson.M{"username": bson.M{"$in": usernames}})
}

// cleanArticles removes test articles by title. Call in t.Cleanup().
func cleanArticles(t *testing.T, db *mongo.Database, titles ...string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db.Collection(schema.Articles.Collection).DeleteMany(ctx,
		bson.M{"title": bson.M{"$in": titles}})
}
