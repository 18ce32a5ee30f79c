// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pressroom/internal/models"
	"pressroom/internal/schema"
)

// ArticleStore handles all article-related document operations.
type ArticleStore struct {
	coll *mongo.Collection
}

// NewArticleStore creates an ArticleStore bound to the articles collection.
func NewArticleStore(db *mongo.Database) *ArticleStore {
	return &ArticleStore{coll: db.Collection(schema.Articles.Collection)}
}

// List returns all articles in store order, narrowed to the listing
// projection: identifier, title, author and both timestamps. Bodies and
// summaries stay in the store.
func (s *ArticleStore) List(ctx context.Context) ([]models.Article, error) {
	return list[models.Article](ctx, s.coll, bson.M{}, bson.M{
		"_id":      1,
		"title":    1,
		"author":   1,
		"pub_date": 1,
		"mod_date": 1,
	})
}

// FindByID retrieves a full article by identifier.
func (s *ArticleStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Article, error) {
	return findOne[models.Article](ctx, s.coll, bson.M{"_id": id})
}

// Insert persists a new article. A title collision surfaces as
// ErrDuplicateKey.
func (s *ArticleStore) Insert(ctx context.Context, a *models.Article) (primitive.ObjectID, error) {
	return insertOne(ctx, s.coll, a)
}

// Update applies a partial-field patch to the article with the given id,
// after checking the patch against the declared shape.
func (s *ArticleStore) Update(ctx context.Context, id primitive.ObjectID, patch bson.M) error {
	if err := schema.Articles.CheckPatch(patch); err != nil {
		return err
	}
	return updateOne(ctx, s.coll, bson.M{"_id": id}, patch)
}

// Delete removes the article with the given id. Returns ErrNotFound if
// nothing was deleted.
func (s *ArticleStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, s.coll, bson.M{"_id": id})
}
