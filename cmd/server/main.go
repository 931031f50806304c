package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/reelrecs/recommendation-engine/internal/cache"
	"github.com/reelrecs/recommendation-engine/internal/catalog"
	"github.com/reelrecs/recommendation-engine/internal/config"
	"github.com/reelrecs/recommendation-engine/internal/handler"
	"github.com/reelrecs/recommendation-engine/internal/pipeline"
	"github.com/reelrecs/recommendation-engine/internal/router"
	"github.com/reelrecs/recommendation-engine/internal/scoring"
	"github.com/reelrecs/recommendation-engine/internal/scoring/scoringpb"
	"github.com/reelrecs/recommendation-engine/internal/service"
	"github.com/reelrecs/recommendation-engine/internal/source"
	"github.com/reelrecs/recommendation-engine/seeds"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	idx, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	users, movies, ratings := idx.Counts()
	log.Info().
		Int("users", users).
		Int("movies", movies).
		Int("ratings", ratings).
		Msg("catalog loaded")

	var resultCache *cache.Cache
	if cfg.CacheEnabled() {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		defer client.Close()
		resultCache = cache.NewCache(client, cfg.CacheTTL)
		if err := resultCache.Ping(ctx); err != nil {
			return fmt.Errorf("ping redis: %w", err)
		}
		log.Info().Msg("result cache enabled")
	} else {
		log.Info().Msg("result cache disabled")
	}

	conn, err := grpc.NewClient(cfg.ScorerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial scorer: %w", err)
	}
	defer conn.Close()
	scorer := scoring.NewClient(scoringpb.NewScorerClient(conn), log)

	filters := []pipeline.Filter{
		pipeline.NewAlreadyWatchedFilter(),
		pipeline.NewMinimumRatingFilter(idx, cfg.MinRating, cfg.MinRatingCount),
		pipeline.NewGenrePreferenceFilter(idx, cfg.TopGenres),
	}
	if cfg.RecencyToleranceYears > 0 {
		filters = append(filters, pipeline.NewRecencyFilter(idx, cfg.RecencyToleranceYears))
	}

	svc := service.NewService(
		idx,
		source.NewCollaborativeSource(idx, log),
		source.NewDiscoverySource(idx, log),
		pipeline.NewChain(log, filters...),
		pipeline.NewEngine(idx),
		scorer,
		resultCache,
		cfg.RequestTimeout,
		log,
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.Setup(handler.NewHandler(svc)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// loadCatalog builds the in-memory catalog from the configured source.
func loadCatalog(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*catalog.Index, error) {
	switch cfg.CatalogSource {
	case "postgres":
		poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse database config: %w", err)
		}
		poolConfig.MaxConns = int32(cfg.DBPoolSize)
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		if err := waitForDB(ctx, pool, log); err != nil {
			return nil, err
		}
		if err := checkSeed(ctx, pool, log); err != nil {
			return nil, fmt.Errorf("seed database: %w", err)
		}
		return catalog.LoadPostgres(ctx, pool, log)
	default:
		return catalog.LoadDir(cfg.DataDir, log)
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Info().Int("attempt", i+1).Msg("waiting for database")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) error {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err == nil && count > 0 {
		log.Info().Int("users", count).Msg("database already seeded, skipping")
		return nil
	}
	// Missing table or empty database, seed from scratch.
	return seeds.Setup(ctx, pool)
}
