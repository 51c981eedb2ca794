package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.StoreBackend != "csv" {
		t.Errorf("expected csv backend by default, got %s", cfg.StoreBackend)
	}
	if cfg.LookbackDays <= 0 {
		t.Errorf("lookback days must be positive, got %d", cfg.LookbackDays)
	}
	if len(cfg.NewsQueries) == 0 {
		t.Error("expected default news queries")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "SQLITE")
	t.Setenv("LOOKBACK_DAYS", "7")
	t.Setenv("NEWS_QUERIES", "defence order win; smart meter L1 bidder")
	t.Setenv("CACHE_ENABLED", "false")

	cfg := DefaultConfig()

	if cfg.StoreBackend != "sqlite" {
		t.Errorf("expected sqlite backend, got %s", cfg.StoreBackend)
	}
	if cfg.LookbackDays != 7 {
		t.Errorf("expected lookback 7, got %d", cfg.LookbackDays)
	}
	if len(cfg.NewsQueries) != 2 || cfg.NewsQueries[1] != "smart meter L1 bidder" {
		t.Errorf("unexpected news queries: %v", cfg.NewsQueries)
	}
	if cfg.CacheEnabled {
		t.Error("expected cache disabled")
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("DATA_CACHE_DIR", filepath.Join(dir, "data", "cache"))
	t.Setenv("STORE_PATH", filepath.Join(dir, "data", "events.csv"))

	cfg := DefaultConfig()
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
}
