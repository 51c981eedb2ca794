package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectDir   string `json:"project_dir"`
	DataDir      string `json:"data_dir"`
	DataCacheDir string `json:"data_cache_dir"`

	// Event store
	StoreBackend    string `json:"store_backend"` // csv or sqlite
	StorePath       string `json:"store_path"`
	MaxStoreRecords int    `json:"max_store_records"`

	// Ingestion
	LookbackDays    int      `json:"lookback_days"`
	NewsQueries     []string `json:"news_queries"`
	NewsMaxPerQuery int      `json:"news_max_per_query"`

	// Indicators
	PriceProvider    string `json:"price_provider"` // yahoo or longport
	PriceLookbackDays int   `json:"price_lookback_days"`
	AnalyzeWorkers   int    `json:"analyze_workers"`

	CacheEnabled bool `json:"cache_enabled"`
	Debug        bool `json:"debug"`

	// Longport API configuration (only needed for PRICE_PROVIDER=longport)
	LongportAppKey      string `json:"longport_app_key"`
	LongportAppSecret   string `json:"longport_app_secret"`
	LongportAccessToken string `json:"longport_access_token"`
}

func DefaultConfig() *Config {
	currentDir, _ := os.Getwd()

	cfg := &Config{
		ProjectDir:   currentDir,
		DataDir:      filepath.Join(currentDir, "data"),
		DataCacheDir: filepath.Join(currentDir, "data", "cache"),

		StoreBackend:    "csv",
		StorePath:       filepath.Join(currentDir, "data", "nse_events.csv"),
		MaxStoreRecords: 5000,

		LookbackDays: 3,
		NewsQueries: []string{
			"company L1 bidder project India",
			"company lowest bidder order",
			"company in talks acquisition India",
		},
		NewsMaxPerQuery: 5,

		PriceProvider:     "yahoo",
		PriceLookbackDays: 365,
		AnalyzeWorkers:    4,

		CacheEnabled: true,
		Debug:        false,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("PROJECT_DIR"); val != "" {
		c.ProjectDir = val
	}
	if val := os.Getenv("DATA_DIR"); val != "" {
		c.DataDir = val
	}
	if val := os.Getenv("DATA_CACHE_DIR"); val != "" {
		c.DataCacheDir = val
	}

	if val := os.Getenv("STORE_BACKEND"); val != "" {
		c.StoreBackend = strings.ToLower(val)
	}
	if val := os.Getenv("STORE_PATH"); val != "" {
		c.StorePath = val
	}
	if val := os.Getenv("MAX_STORE_RECORDS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.MaxStoreRecords = v
		}
	}

	if val := os.Getenv("LOOKBACK_DAYS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.LookbackDays = v
		}
	}
	if val := os.Getenv("NEWS_QUERIES"); val != "" {
		var queries []string
		for _, q := range strings.Split(val, ";") {
			if q = strings.TrimSpace(q); q != "" {
				queries = append(queries, q)
			}
		}
		if len(queries) > 0 {
			c.NewsQueries = queries
		}
	}
	if val := os.Getenv("NEWS_MAX_PER_QUERY"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.NewsMaxPerQuery = v
		}
	}

	if val := os.Getenv("PRICE_PROVIDER"); val != "" {
		c.PriceProvider = strings.ToLower(val)
	}
	if val := os.Getenv("PRICE_LOOKBACK_DAYS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.PriceLookbackDays = v
		}
	}
	if val := os.Getenv("ANALYZE_WORKERS"); val != "" {
		if v, err := strconv.Atoi(val); err == nil && v > 0 {
			c.AnalyzeWorkers = v
		}
	}

	if val := os.Getenv("CACHE_ENABLED"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.CacheEnabled = enabled
		}
	}
	if val := os.Getenv("NSESCAN_DEBUG"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			c.Debug = enabled
		}
	}

	if val := os.Getenv("LONGPORT_APP_KEY"); val != "" {
		c.LongportAppKey = val
	}
	if val := os.Getenv("LONGPORT_APP_SECRET"); val != "" {
		c.LongportAppSecret = val
	}
	if val := os.Getenv("LONGPORT_ACCESS_TOKEN"); val != "" {
		c.LongportAccessToken = val
	}
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{c.DataDir, c.DataCacheDir, filepath.Dir(c.StorePath)}
	for _, dir := range dirs {
		path := strings.TrimSpace(dir)
		if path == "" {
			continue
		}
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", path, err)
		}
	}
	return nil
}
