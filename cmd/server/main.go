package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/skincare-recommendation-service/internal/cache"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/catalog"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/config"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/engine"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/handler"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/logging"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/repository"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/router"
	"github.com/actuallystonmai/skincare-recommendation-service/internal/service"
	"github.com/actuallystonmai/skincare-recommendation-service/seeds"
)

const demoSeedCount = 40

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	tables := catalog.Default()
	if err := tables.Validate(); err != nil {
		logging.Fatal().Err(err).Msg("reference tables are invalid")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to parse database config")
	}
	poolConfig.MaxConns = int32(cfg.Database.PoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		logging.Fatal().Err(err).Msg("database not ready")
	}
	logging.Info().Msg("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := runMigration(ctx, pool, cfg.Database.MigrationsPath, "down"); err != nil {
			logging.Fatal().Err(err).Msg("failed to migrate down")
		}
		return
	}
	if err := runMigration(ctx, pool, cfg.Database.MigrationsPath, "up"); err != nil {
		logging.Fatal().Err(err).Msg("failed to migrate up")
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to parse redis url")
	}
	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	resultCache := cache.NewCache(rdb, cfg.Redis.CacheTTL)
	if err := resultCache.Ping(ctx); err != nil {
		logging.Warn().Err(err).Msg("redis unavailable, results will not be cached until it recovers")
	} else if n, err := resultCache.Purge(ctx); err != nil {
		logging.Warn().Err(err).Msg("failed to purge result cache")
	} else {
		logging.Info().Int("purged", n).Msg("connected to Redis")
	}

	// ------------ Service ---------------
	repo := repository.NewRepository(pool)
	eng := engine.New(
		engine.WithTables(tables),
		engine.WithDefaultMarket(cfg.Engine.DefaultMarket),
	)
	svc := service.NewService(eng, resultCache, repo, cfg.Engine.BatchConcurrency)

	// ------------ Setup Seed Data ---------------
	if cfg.Database.SeedDemoData {
		if err := checkSeed(ctx, repo, svc); err != nil {
			logging.Fatal().Err(err).Msg("failed to check seed")
		}
	}

	// ---------------- Server --------------------
	h := handler.NewHandler(svc, cfg.Engine.BatchMaxItems)
	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Setup(h, router.Options{
			CORSOrigins:       cfg.Security.CORSOrigins,
			RateLimitRequests: cfg.Security.RateLimitRequests,
			RateLimitWindow:   cfg.Security.RateLimitWindow,
			RequestTimeout:    cfg.Server.RequestTimeout,
			Checks: map[string]router.HealthCheck{
				"postgres": pool.Ping,
				"redis":    resultCache.Ping,
			},
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		logging.Info().Int("attempt", i+1).Msg("waiting for database")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return fmt.Errorf("database connection timeout after 30s")
}

// runMigration executes migrations/create_tables.<direction>.sql.
func runMigration(ctx context.Context, pool *pgxpool.Pool, dir, direction string) error {
	path := filepath.Join(dir, "create_tables."+direction+".sql")
	sql, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration %s: %w", path, err)
	}
	logging.Info().Str("direction", direction).Msg("migrations applied")
	return nil
}

func checkSeed(ctx context.Context, repo *repository.Repository, svc *service.Service) error {
	count, err := repo.CountResults(ctx)
	if err != nil {
		return fmt.Errorf("check results count: %w", err)
	}
	if count > 0 {
		logging.Info().Int("results", count).Msg("database already seeded, skipping")
		return nil
	}
	return seeds.Setup(ctx, svc, demoSeedCount)
}
