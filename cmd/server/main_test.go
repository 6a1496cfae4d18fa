package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"meowshunt/internal/catalog"
	"meowshunt/internal/config"
	"meowshunt/internal/logging"
)

func TestMigrationsFS_DefaultsToEmbedded(t *testing.T) {
	names, err := fs.Glob(migrationsFS(""), "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) == 0 || names[0] != "0001_init.sql" {
		t.Fatalf("embedded migrations = %v", names)
	}
}

func TestMigrationsFS_UsesDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "0009_extra.sql"), []byte("SELECT 1;"), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	names, err := fs.Glob(migrationsFS(dir), "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(names) != 1 || names[0] != "0009_extra.sql" {
		t.Fatalf("directory migrations = %v", names)
	}
}

func TestBuildRepos_MemoryDriverLoadsCatalog(t *testing.T) {
	t.Setenv("MEOWSHUNT_AUTH_JWT_SECRET", "memory-driver-secret-0123456789")
	t.Setenv("MEOWSHUNT_DATABASE_DRIVER", "memory")
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	repos, err := buildRepos(context.Background(), cfg, cat, logging.Nop{}, nil)
	if err != nil {
		t.Fatalf("buildRepos: %v", err)
	}
	defer repos.close()

	meows, err := repos.catalog.ListMeows(context.Background())
	if err != nil {
		t.Fatalf("list meows: %v", err)
	}
	if len(meows) != len(cat.Meows) {
		t.Fatalf("meows = %d, want %d", len(meows), len(cat.Meows))
	}

	h := newHandler(cfg, cat, repos, nil, nil, logging.Nop{})
	if h.HuntLimiter == nil || h.RefillUC.Onboard == nil {
		t.Fatalf("handler missing limiter or onboarding: %+v", h)
	}
}
