package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/khadamat/marketplace-api/internal/api"
	"github.com/khadamat/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/khadamat/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/khadamat/marketplace-api/internal/infrastructure/db/redis"
	"github.com/khadamat/marketplace-api/internal/infrastructure/notify"
	"github.com/khadamat/marketplace-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close failed")
		}
	}()

	notifier := notify.NewDispatcher(notify.NewLogSink(log), log)
	notifier.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, log, notifier)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server shut down")
}

// ensureIndexes creates the indexes backing unique emails, ownership
// scoping, and catalog ranking. Safe to run on every start.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewStoreRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewPropertyRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewVehicleRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewOrderRepository(db).EnsureIndexes(ctx)
}
