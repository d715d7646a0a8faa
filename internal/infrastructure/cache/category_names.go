package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const categoryNameKey = "categoria:nome:"

// Redis is the subset of *redis.Client the caches use.
type Redis interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CategoryNames is a read-through cache of authoritative category names.
// Failures only cost a database read, they are never returned.
type CategoryNames struct {
	rdb Redis
	ttl time.Duration
	log *zap.Logger
}

// NewCategoryNames accepts a nil client, in which case every lookup misses.
func NewCategoryNames(rdb Redis, ttl time.Duration, logger *zap.Logger) *CategoryNames {
	return &CategoryNames{rdb: rdb, ttl: ttl, log: logger}
}

func (c *CategoryNames) Get(ctx context.Context, id uuid.UUID) (string, bool) {
	if c.rdb == nil {
		return "", false
	}
	name, err := c.rdb.Get(ctx, categoryNameKey+id.String()).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("category cache get failed", zap.Error(err))
		}
		return "", false
	}

	return name, true
}

func (c *CategoryNames) Put(ctx context.Context, id uuid.UUID, name string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, categoryNameKey+id.String(), name, c.ttl).Err(); err != nil {
		c.log.Warn("category cache set failed", zap.Error(err))
	}
}

func (c *CategoryNames) Invalidate(ctx context.Context, id uuid.UUID) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, categoryNameKey+id.String()).Err(); err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn("category cache invalidate failed", zap.Error(err))
	}
}
