// service_test.go provides a shared test database helper for the
// service integration tests. Tests are skipped if the document store is
// not available.
package service

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pressroom/internal/auth"
	"pressroom/internal/schema"
	"pressroom/internal/store"
)

func testURI() string {
	if v := os.Getenv("MONGO_URI"); v != "" {
		return v
	}
	return "mongodb://localhost:27017"
}

// testDB connects to the test database and syncs the collection schemas.
// If the store is unavailable, the test is skipped.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := store.Connect(ctx, testURI())
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

// testAuthService builds an AuthService over the test database with a
// fixed signing secret.
func testAuthService(t *testing.T, db *mongo.Database) *AuthService {
	t.Helper()
	tokens, err := auth.NewTokenManager("service-test-secret", "HS256", 20)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return NewAuthService(store.NewUserStore(db), tokens)
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
