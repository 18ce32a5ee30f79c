// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pressroom/internal/models"
	"pressroom/internal/schema"
)

func testUser(username string) *models.User {
	return &models.User{
		Username:     username,
		PasswordHash: []byte("$2a$10$fake-digest-for-store-tests"),
		Permission:   models.PermissionGuest,
	}
}

func TestUserStoreInsertAndFind(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	username := "store-insert-user"
	t.Cleanup(func() { cleanUsers(t, db, username) })

	id, err := s.Insert(ctx, testUser(username))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id.IsZero() {
		t.Error("expected a store-assigned identifier")
	}

	byName, err := s.FindByUsername(ctx, username)
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if byName.ID != id {
		t.Errorf("ID mismatch: got %s, want %s", byName.ID.Hex(), id.Hex())
	}
	if !bytes.Equal(byName.PasswordHash, []byte("$2a$10$fake-digest-for-store-tests")) {
		t.Error("password hash did not round-trip")
	}
	if byName.Permission != models.PermissionGuest {
		t.Errorf("permission: got %q, want %q", byName.Permission, models.PermissionGuest)
	}

	byID, err := s.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if byID.Username != username {
		t.Errorf("username: got %q, want %q", byID.Username, username)
	}
}

func TestUserStoreFindNotFound(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	if _, err := s.FindByUsername(ctx, "store-no-such-user"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByUsername = %v, want ErrNotFound", err)
	}
	if _, err := s.FindByID(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID = %v, want ErrNotFound", err)
	}
}

func TestUserStoreDuplicateUsername(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	username := "store-dupe-user"
	t.Cleanup(func() { cleanUsers(t, db, username) })

	if _, err := s.Insert(ctx, testUser(username)); err != nil {
		t.Fatalf("first Insert: %v", err)
	}
	if _, err := s.Insert(ctx, testUser(username)); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("second Insert = %v, want ErrDuplicateKey", err)
	}
}

func TestUserStoreListExcludesPasswordHash(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	username := "store-list-user"
	t.Cleanup(func() { cleanUsers(t, db, username) })

	if _, err := s.Insert(ctx, testUser(username)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	users, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	found := false
	for _, u := range users {
		if len(u.PasswordHash) != 0 {
			t.Errorf("user %q: password hash leaked through the listing projection", u.Username)
		}
		if u.Username == username {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %q in the listing", username)
	}
}

func TestUserStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	username := "store-update-user"
	t.Cleanup(func() { cleanUsers(t, db, username) })

	id, err := s.Insert(ctx, testUser(username))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := s.Update(ctx, id, bson.M{"f_name": "Ada"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	u, err := s.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if u.FirstName == nil || *u.FirstName != "Ada" {
		t.Errorf("f_name: got %v, want Ada", u.FirstName)
	}

	// Writing the same value again matches but modifies nothing.
	if err := s.Update(ctx, id, bson.M{"f_name": "Ada"}); !errors.Is(err, ErrNoChange) {
		t.Errorf("no-op Update = %v, want ErrNoChange", err)
	}

	// Fields outside the declared shape are rejected before the store
	// sees them.
	var ve *schema.ValidationError
	if err := s.Update(ctx, id, bson.M{"role": "admin"}); !errors.As(err, &ve) {
		t.Errorf("Update with unknown field = %v, want *ValidationError", err)
	}

	if err := s.Update(ctx, primitive.NewObjectID(), bson.M{"f_name": "Ada"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update of missing id = %v, want ErrNotFound", err)
	}
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()
	parsed, err := ParseID(id.Hex())
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if parsed != id {
		t.Errorf("round-trip mismatch: got %s, want %s", parsed.Hex(), id.Hex())
	}

	for _, bad := range []string{"", "zzz", "1234", "16-chars-not-hex!"} {
		var ve *schema.ValidationError
		if _, err := ParseID(bad); !errors.As(err, &ve) {
			t.Errorf("ParseID(%q) = %v, want *ValidationError", bad, err)
		}
	}
}
