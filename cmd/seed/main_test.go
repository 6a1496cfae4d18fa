package main

import (
	"context"
	"strings"
	"testing"

	"meowshunt/internal/config"
	"meowshunt/internal/logging"
)

func TestSeed_RequiresPostgres(t *testing.T) {
	cfg := config.Config{Database: config.DatabaseConfig{Driver: "memory"}}
	err := seed(context.Background(), cfg, "", false, logging.Nop{})
	if err == nil || !strings.Contains(err.Error(), "postgres") {
		t.Fatalf("expected postgres driver error, got %v", err)
	}
}

func TestSeed_RejectsMissingCatalogFile(t *testing.T) {
	cfg := config.Config{Database: config.DatabaseConfig{Driver: "postgres", DSN: "postgres://unused"}}
	if err := seed(context.Background(), cfg, "/does/not/exist.yaml", false, logging.Nop{}); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}
