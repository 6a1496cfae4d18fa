package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	rediscache "meowshunt/internal/adapter/cache/redis"
	httpadapter "meowshunt/internal/adapter/http"
	metricsinmem "meowshunt/internal/adapter/metrics/inmemory"
	metricsprom "meowshunt/internal/adapter/metrics/prometheus"
	gormrepo "meowshunt/internal/adapter/repo/gorm"
	"meowshunt/internal/adapter/repo/memory"
	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/collection"
	"meowshunt/internal/app/equipment"
	"meowshunt/internal/app/history"
	"meowshunt/internal/app/hunt"
	"meowshunt/internal/app/inventory"
	"meowshunt/internal/app/location"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/rank"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/app/shop"
	"meowshunt/internal/app/starter"
	"meowshunt/internal/app/status"
	"meowshunt/internal/catalog"
	"meowshunt/internal/config"
	"meowshunt/internal/domain/hunting"
	"meowshunt/internal/logging"
	"meowshunt/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
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

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger logging.Logger) error {
	ctx := context.Background()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promRecorder, err := metricsprom.New(metricsprom.DefaultNamespace, reg)
	if err != nil {
		return err
	}
	kpiRecorder := metricsinmem.NewRecorder()

	cat, err := catalog.Load(cfg.Database.CatalogFile)
	if err != nil {
		return err
	}
	repos, err := buildRepos(ctx, cfg, cat, logger, promRecorder)
	if err != nil {
		return err
	}
	defer repos.close()

	ranks, err := rank.NewAsyncRecalculator(rank.UseCase{
		TxManager: repos.tx,
		Profiles:  repos.profiles,
		Catalog:   repos.catalog,
	}, cfg.Rank.PoolSize, cfg.Rank.Timeout, logger)
	if err != nil {
		return err
	}

	h := newHandler(cfg, cat, repos, ranks, metricsprom.Tee{kpiRecorder, promRecorder}, logger)
	h.KPI = kpiRecorder
	h.Metrics = httpadapter.PrometheusHandler(reg)

	s := server.Default(
		server.WithHostPorts(cfg.HTTP.Addr),
		server.WithExitWaitTime(5*time.Second),
	)
	s.OnShutdown = append(s.OnShutdown, func(context.Context) {
		if err := ranks.Close(cfg.Rank.Timeout); err != nil {
			logger.Warn("rank pool did not drain", "err", err)
		}
	})
	h.RegisterRoutes(s)

	logger.Info("meowshunt server listening", "addr", cfg.HTTP.Addr, "driver", cfg.Database.Driver)
	s.Spin()
	return nil
}

type repoSet struct {
	tx         ports.TxManager
	profiles   ports.ProfileRepository
	equipment  ports.EquipmentRepository
	inventory  ports.InventoryRepository
	catalog    ports.CatalogRepository
	hunts      ports.HuntRepository
	collection ports.CollectionRepository
	close      func()
}

func buildRepos(ctx context.Context, cfg config.Config, cat catalog.Catalog, logger logging.Logger, cacheMetrics rediscache.Metrics) (repoSet, error) {
	if cfg.Database.Driver == "memory" {
		store := memory.NewStore()
		store.LoadCatalog(cat)
		logger.Warn("using in-memory storage; state is lost on restart")
		return repoSet{
			tx:         memory.NewTxManager(store),
			profiles:   memory.NewProfileRepo(store),
			equipment:  memory.NewEquipmentRepo(store),
			inventory:  memory.NewInventoryRepo(store),
			catalog:    memory.NewCatalogRepo(store),
			hunts:      memory.NewHuntRepo(store),
			collection: memory.NewCollectionRepo(store),
			close:      func() {},
		}, nil
	}

	db, err := gormrepo.OpenPostgres(cfg.Database.DSN, gormrepo.PoolOptions{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return repoSet{}, err
	}
	applied, err := gormrepo.ApplyMigrations(ctx, db, migrationsFS(cfg.Database.MigrationsDir))
	if err != nil {
		return repoSet{}, err
	}
	if len(applied) > 0 {
		logger.Info("applied migrations", "files", strings.Join(applied, ","))
	}

	var catalogRepo ports.CatalogRepository = gormrepo.NewCatalogRepo(db)
	closers := []func(){}
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis unreachable; catalog reads fall back to postgres", "addr", cfg.Redis.Addr, "err", err)
		}
		cancel()
		catalogRepo = rediscache.NewCatalogCache(catalogRepo, rdb, cfg.Redis.TTL, logger, cacheMetrics)
		closers = append(closers, func() { _ = rdb.Close() })
	}
	closers = append(closers, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return repoSet{
		tx:         gormrepo.NewTxManager(db),
		profiles:   gormrepo.NewProfileRepo(db),
		equipment:  gormrepo.NewEquipmentRepo(db),
		inventory:  gormrepo.NewInventoryRepo(db),
		catalog:    catalogRepo,
		hunts:      gormrepo.NewHuntRepo(db),
		collection: gormrepo.NewCollectionRepo(db),
		close: func() {
			for _, c := range closers {
				c()
			}
		},
	}, nil
}

// migrationsFS prefers an on-disk directory so operators can ship extra
// migrations without rebuilding.
func migrationsFS(dir string) fs.FS {
	if strings.TrimSpace(dir) != "" {
		return os.DirFS(dir)
	}
	return migrations.FS
}

func newHandler(cfg config.Config, cat catalog.Catalog, repos repoSet, ranks ports.RankDispatcher, metrics ports.HuntMetrics, logger logging.Logger) httpadapter.Handler {
	now := time.Now
	rf := refill.UseCase{
		TxManager: repos.tx,
		Profiles:  repos.profiles,
		Catalog:   repos.catalog,
		Policy:    cfg.Energy.Policy(),
		Onboard: starter.UseCase{
			Inventory: repos.inventory,
			Equipment: repos.equipment,
			Catalog:   repos.catalog,
			Kit:       starter.KitFromCatalog(cat),
		},
		Metrics: metrics,
		Now:     now,
	}
	return httpadapter.Handler{
		AuthUC: auth.VerifyUseCase{
			Secret:   []byte(cfg.Auth.JWTSecret),
			Issuer:   cfg.Auth.Issuer,
			Audience: cfg.Auth.Audience,
		},
		RefillUC: rf,
		HuntUC: hunt.UseCase{
			TxManager:  repos.tx,
			Refill:     rf,
			Profiles:   repos.profiles,
			Equipment:  repos.equipment,
			Inventory:  repos.inventory,
			Catalog:    repos.catalog,
			Hunts:      repos.hunts,
			Collection: repos.collection,
			Ranks:      ranks,
			Metrics:    metrics,
			Catch:      cfg.Hunt.CatchPolicy(),
			Dice:       hunting.DefaultDice(),
			Logger:     logger,
			Now:        now,
		},
		StatusUC: status.UseCase{
			TxManager: repos.tx,
			Refill:    rf,
			Equipment: repos.equipment,
			Inventory: repos.inventory,
			Catalog:   repos.catalog,
		},
		LocationsUC: location.ListUseCase{Profiles: repos.profiles, Catalog: repos.catalog},
		SelectUC: location.SelectUseCase{
			TxManager: repos.tx,
			Refill:    rf,
			Profiles:  repos.profiles,
			Catalog:   repos.catalog,
		},
		EquipmentUC: equipment.UseCase{
			TxManager: repos.tx,
			Equipment: repos.equipment,
			Inventory: repos.inventory,
			Catalog:   repos.catalog,
		},
		ShopUC: shop.UseCase{
			TxManager: repos.tx,
			Refill:    rf,
			Profiles:  repos.profiles,
			Inventory: repos.inventory,
			Catalog:   repos.catalog,
		},
		HistoryUC:    history.UseCase{Hunts: repos.hunts, Catalog: repos.catalog},
		CollectionUC: collection.UseCase{Collection: repos.collection, Catalog: repos.catalog},
		InventoryUC:  inventory.UseCase{Inventory: repos.inventory, Equipment: repos.equipment},
		HuntLimiter:  httpadapter.NewPlayerLimiter(cfg.HTTP.HuntRate, cfg.HTTP.HuntBurst),
		CORSOrigins:  cfg.HTTP.CORSOrigins,
		Logger:       logger,
	}
}
