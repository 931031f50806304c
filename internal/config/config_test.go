package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "files", cfg.CatalogSource)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "localhost:50051", cfg.ScorerAddr)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3.5, cfg.MinRating)
	assert.Equal(t, uint32(10), cfg.MinRatingCount)
	assert.Equal(t, 3, cfg.TopGenres)
	assert.Equal(t, 0, cfg.RecencyToleranceYears)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SCORER_ADDR", "scorer:50051")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("MIN_RATING", "4.0")
	t.Setenv("RECENCY_TOLERANCE_YEARS", "7")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "scorer:50051", cfg.ScorerAddr)
	assert.Equal(t, 4.0, cfg.MinRating)
	assert.Equal(t, 7, cfg.RecencyToleranceYears)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("PORT", "-1")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsUnknownCatalogSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "sqlite")

	_, err := Load()
	require.Error(t, err)
}
