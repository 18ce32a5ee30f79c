// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"pressroom/internal/cache"
	"pressroom/internal/models"
	"pressroom/internal/schema"
	"pressroom/internal/store"
)

// ArticleInput carries the writable article fields from the wire.
type ArticleInput struct {
	Title   string
	Author  string
	Body    *string
	Summary *string
}

// ArticlePatch carries a partial update; nil fields are left untouched.
type ArticlePatch struct {
	Title   *string
	Author  *string
	Body    *string
	Summary *string
}

// ArticleService implements article CRUD over the store, with an
// optional Valkey read cache in front of the two read paths.
type ArticleService struct {
	articles *store.ArticleStore
	cache    *cache.ArticleCache
}

// NewArticleService creates an ArticleService. The cache may be nil.
func NewArticleService(articles *store.ArticleStore, articleCache *cache.ArticleCache) *ArticleService {
	return &ArticleService{articles: articles, cache: articleCache}
}

// List returns all articles in the listing projection, serving from the
// cache when a fresh copy exists.
func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	if payload, ok := s.cache.GetList(ctx); ok {
		var cached []models.Article
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		slog.Warn("discarding undecodable cached article list")
	}

	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(articles); err == nil {
		s.cache.SetList(ctx, payload)
	}
	return articles, nil
}

// Get returns the full article with the given wire identifier.
func (s *ArticleService) Get(ctx context.Context, id string) (*models.Article, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	if payload, ok := s.cache.GetArticle(ctx, id); ok {
		var cached models.Article
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.articles.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(article); err == nil {
		s.cache.SetArticle(ctx, id, payload)
	}
	return article, nil
}

// Create persists a new article. Both timestamps default to creation
// time. A title collision surfaces as store.ErrDuplicateKey.
func (s *ArticleService) Create(ctx context.Context, input ArticleInput) (*models.Article, error) {
	if err := schema.Articles.CheckString("title", input.Title); err != nil {
		return nil, err
	}
	if err := schema.Articles.CheckString("author", input.Author); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	article := &models.Article{
		Title:       input.Title,
		Author:      input.Author,
		PublishedAt: now,
		ModifiedAt:  now,
		Body:        input.Body,
		Summary:     input.Summary,
	}

	id, err := s.articles.Insert(ctx, article)
	if err != nil {
		return nil, err
	}
	article.ID = id

	s.cache.Invalidate(ctx, "")
	return article, nil
}

// Update applies the non-nil fields of patch and bumps the modification
// timestamp. A matched update that modifies nothing is store.ErrNoChange.
func (s *ArticleService) Update(ctx context.Context, id string, patch ArticlePatch) (*models.Article, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.Body != nil {
		set["body"] = *patch.Body
	}
	if patch.Summary != nil {
		set["summary"] = *patch.Summary
	}
	if len(set) == 0 {
		return nil, schema.Invalid("patch", "no updatable fields")
	}
	set["mod_date"] = time.Now().UTC().Truncate(time.Millisecond)

	if err := s.articles.Update(ctx, oid, set); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return s.articles.FindByID(ctx, oid)
}

// Delete removes the article with the given wire identifier.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, oid); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}
