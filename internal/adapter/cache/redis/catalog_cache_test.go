package rediscache

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
	"meowshunt/internal/logging"

	"github.com/redis/go-redis/v9"
)

type countingCatalog struct {
	mu    sync.Mutex
	calls map[string]int
}

func (c *countingCatalog) count(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[name]++
}

func (c *countingCatalog) n(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

func (c *countingCatalog) GetItem(_ context.Context, id int64) (hunting.Item, error) {
	c.count("item")
	if id == 404 {
		return hunting.Item{}, ports.ErrNotFound
	}
	return hunting.Item{ID: id, Type: hunting.ItemTrap, Name: "Basic Trap", Power: 10}, nil
}

func (c *countingCatalog) GetLocation(_ context.Context, id int64) (hunting.Location, error) {
	c.count("location")
	return hunting.Location{ID: id, Name: "Backyard Garden"}, nil
}

func (c *countingCatalog) ListLocations(context.Context) ([]hunting.Location, error) {
	c.count("locations")
	return []hunting.Location{{ID: 1, Name: "Backyard Garden"}}, nil
}

func (c *countingCatalog) ListMeows(context.Context) ([]hunting.Meow, error) {
	c.count("meows")
	return []hunting.Meow{{ID: 1, Name: "Whiskers"}}, nil
}

func (c *countingCatalog) ListSpawns(_ context.Context, locationID int64) ([]hunting.Spawn, error) {
	c.count("spawns")
	return []hunting.Spawn{{Meow: hunting.Meow{ID: 1, Name: "Whiskers"}, SpawnChance: 0.8}}, nil
}

func (c *countingCatalog) ListShopItems(context.Context, int64) ([]hunting.Item, error) {
	c.count("shop")
	return nil, nil
}

func (c *countingCatalog) ListRanks(context.Context) ([]hunting.Rank, error) {
	c.count("ranks")
	return []hunting.Rank{{ID: 1, Name: "Novice Hunter"}}, nil
}

type recordingMetrics struct {
	mu           sync.Mutex
	hits, misses map[string]int
}

func (m *recordingMetrics) RecordCacheHit(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hits == nil {
		m.hits = make(map[string]int)
	}
	m.hits[name]++
}

func (m *recordingMetrics) RecordCacheMiss(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.misses == nil {
		m.misses = make(map[string]int)
	}
	m.misses[name]++
}

func TestCatalogCache_FallsBackWhenRedisIsDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	inner := &countingCatalog{}
	cache := NewCatalogCache(inner, rdb, time.Minute, logging.Nop{}, nil)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		spawns, err := cache.ListSpawns(ctx, 1)
		if err != nil || len(spawns) != 1 {
			t.Fatalf("spawns: %+v %v", spawns, err)
		}
	}
	if got := inner.n("spawns"); got != 2 {
		t.Fatalf("expected every call to reach the database, got %d", got)
	}
}

func TestKind(t *testing.T) {
	cases := map[string]string{"item:3": "item", "ranks": "ranks", "spawns:12": "spawns"}
	for in, want := range cases {
		if got := kind(in); got != want {
			t.Fatalf("kind(%q) = %q, want %q", in, got, want)
		}
	}
}

func requireRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("MEOWSHUNT_TEST_REDIS")
	if addr == "" {
		t.Skip("MEOWSHUNT_TEST_REDIS is required for integration test")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestCatalogCache_ReadThrough(t *testing.T) {
	rdb := requireRedis(t)
	inner := &countingCatalog{}
	metrics := &recordingMetrics{}
	cache := NewCatalogCache(inner, rdb, time.Minute, logging.Nop{}, metrics)
	ctx := context.Background()
	if err := cache.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}

	for i := 0; i < 3; i++ {
		item, err := cache.GetItem(ctx, 1)
		if err != nil || item.Name != "Basic Trap" || item.Power != 10 {
			t.Fatalf("get item: %+v %v", item, err)
		}
		if _, err := cache.ListRanks(ctx); err != nil {
			t.Fatalf("ranks: %v", err)
		}
	}
	if inner.n("item") != 1 || inner.n("ranks") != 1 {
		t.Fatalf("expected one database read each, got %v", inner.calls)
	}
	if metrics.hits["item"] != 2 || metrics.misses["item"] != 1 {
		t.Fatalf("unexpected metrics: hits=%v misses=%v", metrics.hits, metrics.misses)
	}

	if _, err := cache.GetItem(ctx, 404); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := cache.GetItem(ctx, 404); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if inner.n("item") != 3 {
		t.Fatalf("errors must not be cached, inner calls = %d", inner.n("item"))
	}

	if err := cache.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if _, err := cache.GetItem(ctx, 1); err != nil {
		t.Fatalf("get item after flush: %v", err)
	}
	if inner.n("item") != 4 {
		t.Fatalf("expected reload after flush, got %d", inner.n("item"))
	}
}
