package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bettolandro/BettoGames/internal/api"
	"github.com/bettolandro/BettoGames/internal/core/ports"
	"github.com/bettolandro/BettoGames/internal/core/service"
	"github.com/bettolandro/BettoGames/internal/infrastructure/config"
	"github.com/bettolandro/BettoGames/internal/infrastructure/repository"
	memorystore "github.com/bettolandro/BettoGames/internal/infrastructure/store/memory"
	mongostore "github.com/bettolandro/BettoGames/internal/infrastructure/store/mongo"
	redisstore "github.com/bettolandro/BettoGames/internal/infrastructure/store/redis"
	"github.com/bettolandro/BettoGames/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store ports.KeyValueStore
	switch cfg.StoreBackend {
	case "memory":
		store = memorystore.New()
		log.Warn().Msg("using in-memory store; data will not survive restarts")
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		store = mongostore.NewStore(db)
	default:
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = client.Close() }()
		store = redisstore.NewStore(client)
	}

	// First run against an empty store seeds the demo accounts and catalog.
	users := repository.NewUsers(store, log)
	products := repository.NewProducts(store, log)
	sessions := repository.NewSessions(store, log)
	if err := service.Seed(ctx, users, products, sessions, log); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	e := api.NewRouter(store, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreBackend).Msg("storefront started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
