// Catalog API entrypoint: loads configuration, connects MongoDB and Redis,
// bootstraps the role registry and serves HTTP until interrupted.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/starlog/catalog-api/internal/api"
	"github.com/starlog/catalog-api/internal/core/service"
	"github.com/starlog/catalog-api/internal/infrastructure/config"
	mongodb "github.com/starlog/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/starlog/catalog-api/internal/infrastructure/db/redis"
	"github.com/starlog/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "catalog-api",
	})

	// The signing secret is process-wide and read-only after startup.
	// Refusing to boot without one keeps the failure out of the request path.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Role bootstrap is part of startup: a registry without the closed role
	// enumeration cannot authorize anything.
	counters := mongodb.NewCounterRepository(db)
	roleService := service.NewRoleService(mongodb.NewRoleRepository(db, counters), log)
	if err := roleService.EnsureRoles(ctx); err != nil {
		log.Fatal().Err(err).Msg("role bootstrap failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
