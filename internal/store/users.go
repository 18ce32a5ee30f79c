package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pressroom/internal/models"
	"pressroom/internal/schema"
)

// UserStore handles all user-related document operations.
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a UserStore bound to the users collection.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection(schema.Users.Collection)}
}

// FindByUsername retrieves the user with the given username.
// Returns ErrNotFound unless exactly one document matches.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return findOne[models.User](ctx, s.coll, bson.M{"username": username})
}

// FindByID retrieves a user by identifier.
func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return findOne[models.User](ctx, s.coll, bson.M{"_id": id})
}

// List returns all users in store order. The password hash is excluded
// by projection — it never leaves the store on this path.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, s.coll, bson.M{}, bson.M{
		"_id":        1,
		"username":   1,
		"f_name":     1,
		"l_name":     1,
		"permission": 1,
	})
}

// Insert persists a new user and returns the store-assigned identifier.
// A username collision surfaces as ErrDuplicateKey.
func (s *UserStore) Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, u)
}

// Update applies a partial-field patch to the user with the given id.
// The patch is checked against the declared shape first: fields outside
// the declaration are rejected outright.
func (s *UserStore) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	if err := schema.Users.CheckPatch(patch); err != nil {
		return err
	}
	return updateOne(ctx, s.coll, bson.M{"_id": id}, patch)
}
