// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// articles.go provides a Valkey-backed read cache for article payloads.
// The article listing and individual article lookups are the hot read
// path; their serialized results are cached so repeated reads skip the
// document store entirely. Every article mutation invalidates.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// articleKeyPrefix namespaces article cache keys in Valkey.
	articleKeyPrefix = "article:"

	// listKey stores the serialized article listing.
	listKey = "articles:list"

	// DefaultArticleTTL is how long a cached payload stays fresh.
	DefaultArticleTTL = 5 * time.Minute
)

// ArticleCache manages cached article payloads in Valkey. A nil
// *ArticleCache is valid and always misses, so the service runs fine
// without Valkey configured.
type ArticleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewArticleCache creates an article cache backed by the given Valkey client.
func NewArticleCache(client *redis.Client, ttl time.Duration) *ArticleCache {
	if ttl == 0 {
		ttl = DefaultArticleTTL
	}
	return &ArticleCache{client: client, ttl: ttl}
}

// GetList retrieves the cached article listing. Returns false on miss.
func (c *ArticleCache) GetList(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.get(ctx, listKey)
}

// SetList stores the serialized article listing with the configured TTL.
func (c *ArticleCache) SetList(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}
	c.set(ctx, listKey, payload)
}

// GetArticle retrieves a cached article payload by its identifier.
func (c *ArticleCache) GetArticle(ctx context.Context, id string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	return c.get(ctx, articleKeyPrefix+id)
}

// SetArticle stores a serialized article payload by its identifier.
func (c *ArticleCache) SetArticle(ctx context.Context, id string, payload []byte) {
	if c == nil {
		return
	}
	c.set(ctx, articleKeyPrefix+id, payload)
}

// Invalidate removes the listing and, when id is non-empty, the single
// article entry. Called after every article mutation.
func (c *ArticleCache) Invalidate(ctx context.Context, id string) {
	if c == nil {
		return
	}
	keys := []string{listKey}
	if id != "" {
		keys = append(keys, articleKeyPrefix+id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("article cache invalidate error", "error", err)
	}
	slog.Debug("article cache invalidated", "id", id)
}

func (c *ArticleCache) get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("article cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("article cache hit", "key", key)
	return val, true
}

func (c *ArticleCache) set(ctx context.Context, key string, payload []byte) {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("article cache set error", "key", key, "error", err)
	}
}
