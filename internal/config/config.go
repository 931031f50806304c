package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the full runtime configuration, loaded from environment variables
// over built-in defaults.
type Config struct {
	Port int `koanf:"port" validate:"min=1,max=65535"`

	// CatalogSource selects where the catalog is loaded from on startup.
	CatalogSource string `koanf:"catalog_source" validate:"oneof=files postgres"`
	DataDir       string `koanf:"data_dir" validate:"required_if=CatalogSource files"`
	DatabaseURL   string `koanf:"database_url" validate:"required_if=CatalogSource postgres"`
	DBPoolSize    int    `koanf:"db_pool_size" validate:"min=1"`

	// RedisURL enables the result cache; empty disables caching entirely.
	RedisURL string        `koanf:"redis_url"`
	CacheTTL time.Duration `koanf:"cache_ttl" validate:"min=0"`

	ScorerAddr     string        `koanf:"scorer_addr" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"min=1000000"`

	MinRating             float64 `koanf:"min_rating" validate:"min=0,max=5"`
	MinRatingCount        uint32  `koanf:"min_rating_count" validate:"min=1"`
	TopGenres             int     `koanf:"top_genres" validate:"min=1"`
	RecencyToleranceYears int     `koanf:"recency_tolerance_years" validate:"min=0"`

	LogLevel string `koanf:"log_level" validate:"oneof=trace debug info warn error"`
}

func defaults() Config {
	return Config{
		Port:           8080,
		CatalogSource:  "files",
		DataDir:        "data",
		DBPoolSize:     20,
		CacheTTL:       10 * time.Minute,
		ScorerAddr:     "localhost:50051",
		RequestTimeout: 10 * time.Second,
		MinRating:      3.5,
		MinRatingCount: 10,
		TopGenres:      3,
		LogLevel:       "info",
	}
}

// Load builds the configuration from defaults overlaid with environment
// variables (PORT, DATA_DIR, SCORER_ADDR, ...).
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CacheEnabled reports whether a Redis result cache should be wired in.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
