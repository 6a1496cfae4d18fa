// Command seed loads a catalog file into postgres and drops stale cached
// catalog entries from redis.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	rediscache "meowshunt/internal/adapter/cache/redis"
	gormrepo "meowshunt/internal/adapter/repo/gorm"
	"meowshunt/internal/catalog"
	"meowshunt/internal/config"
	"meowshunt/internal/logging"
	"meowshunt/migrations"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	catalogPath := pflag.String("catalog", "", "catalog YAML to seed; empty seeds the embedded default")
	migrate := pflag.Bool("migrate", true, "apply embedded migrations before seeding")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := seed(context.Background(), cfg, *catalogPath, *migrate, logger); err != nil {
		logger.Error("seed failed", "err", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, cfg config.Config, catalogPath string, migrate bool, logger logging.Logger) error {
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("seed needs the postgres driver, got %q", cfg.Database.Driver)
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}
	db, err := gormrepo.OpenPostgres(cfg.Database.DSN, gormrepo.PoolOptions{MaxOpenConns: 2})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if migrate {
		applied, err := gormrepo.ApplyMigrations(ctx, db, migrations.FS)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "count", len(applied))
	}
	if err := gormrepo.SeedCatalog(ctx, db, cat); err != nil {
		return err
	}
	logger.Info("catalog seeded",
		"ranks", len(cat.Ranks),
		"locations", len(cat.Locations),
		"items", len(cat.Items),
		"meows", len(cat.Meows),
	)

	if !cfg.Redis.Enabled() {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	defer rdb.Close()
	flushCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	cache := rediscache.NewCatalogCache(gormrepo.NewCatalogRepo(db), rdb, cfg.Redis.TTL, logger, nil)
	if err := cache.Flush(flushCtx); err != nil {
		logger.Warn("catalog cache flush failed; entries expire after ttl", "err", err)
	}
	return nil
}
