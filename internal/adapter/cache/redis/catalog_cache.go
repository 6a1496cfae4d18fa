// Package rediscache puts a read-through redis cache in front of the
// catalog repository. Catalog rows are reference data, so entries simply
// expire; seeding calls Flush.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
	"meowshunt/internal/logging"

	"github.com/redis/go-redis/v9"
)

const (
	KeyPrefix  = "meowshunt:catalog:"
	DefaultTTL = 5 * time.Minute
)

// Metrics is optional; the prometheus recorder implements it.
type Metrics interface {
	RecordCacheHit(name string)
	RecordCacheMiss(name string)
}

type CatalogCache struct {
	inner   ports.CatalogRepository
	rdb     redis.UniversalClient
	ttl     time.Duration
	logger  logging.Logger
	metrics Metrics
}

func NewCatalogCache(inner ports.CatalogRepository, rdb redis.UniversalClient, ttl time.Duration, logger logging.Logger, metrics Metrics) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CatalogCache{
		inner:   inner,
		rdb:     rdb,
		ttl:     ttl,
		logger:  logging.OrNop(logger).Named("cache.catalog"),
		metrics: metrics,
	}
}

func (c *CatalogCache) GetItem(ctx context.Context, itemID int64) (hunting.Item, error) {
	return cached(ctx, c, fmt.Sprintf("item:%d", itemID), func(ctx context.Context) (hunting.Item, error) {
		return c.inner.GetItem(ctx, itemID)
	})
}

func (c *CatalogCache) GetLocation(ctx context.Context, locationID int64) (hunting.Location, error) {
	return cached(ctx, c, fmt.Sprintf("location:%d", locationID), func(ctx context.Context) (hunting.Location, error) {
		return c.inner.GetLocation(ctx, locationID)
	})
}

func (c *CatalogCache) ListLocations(ctx context.Context) ([]hunting.Location, error) {
	return cached(ctx, c, "locations", c.inner.ListLocations)
}

func (c *CatalogCache) ListMeows(ctx context.Context) ([]hunting.Meow, error) {
	return cached(ctx, c, "meows", c.inner.ListMeows)
}

func (c *CatalogCache) ListSpawns(ctx context.Context, locationID int64) ([]hunting.Spawn, error) {
	return cached(ctx, c, fmt.Sprintf("spawns:%d", locationID), func(ctx context.Context) ([]hunting.Spawn, error) {
		return c.inner.ListSpawns(ctx, locationID)
	})
}

func (c *CatalogCache) ListShopItems(ctx context.Context, locationID int64) ([]hunting.Item, error) {
	return cached(ctx, c, fmt.Sprintf("shop:%d", locationID), func(ctx context.Context) ([]hunting.Item, error) {
		return c.inner.ListShopItems(ctx, locationID)
	})
}

func (c *CatalogCache) ListRanks(ctx context.Context) ([]hunting.Rank, error) {
	return cached(ctx, c, "ranks", c.inner.ListRanks)
}

// Flush drops every catalog key.
func (c *CatalogCache) Flush(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, KeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan catalog keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete catalog keys: %w", err)
	}
	return nil
}

// cached serves key from redis, falling back to load on a miss or any redis
// failure. Errors from load are never cached.
func cached[T any](ctx context.Context, c *CatalogCache, key string, load func(context.Context) (T, error)) (T, error) {
	full := KeyPrefix + key
	data, err := c.rdb.Get(ctx, full).Bytes()
	switch {
	case err == nil:
		var v T
		uerr := json.Unmarshal(data, &v)
		if uerr == nil {
			c.hit(key)
			return v, nil
		}
		c.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", full, "error", uerr)
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "catalog cache read failed", "key", full, "error", err)
	}
	c.miss(key)

	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		c.logger.WarnContext(ctx, "catalog cache encode failed", "key", full, "error", err)
		return v, nil
	}
	if err := c.rdb.Set(ctx, full, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "catalog cache write failed", "key", full, "error", err)
	}
	return v, nil
}

// kind strips the id so metric labels stay bounded.
func kind(key string) string {
	k, _, _ := strings.Cut(key, ":")
	return k
}

func (c *CatalogCache) hit(key string) {
	if c.metrics != nil {
		c.metrics.RecordCacheHit(kind(key))
	}
}

func (c *CatalogCache) miss(key string) {
	if c.metrics != nil {
		c.metrics.RecordCacheMiss(kind(key))
	}
}
