// Package main provides the warehouse bot webhook server entrypoint.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/WareOnGo/whatsapp-logistics-bot/internal/cache"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/config"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/listing"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/media"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/observability"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/parser"
	"github.com/WareOnGo/whatsapp-logistics-bot/internal/storage"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if len(os.Args) > 2 && os.Args[1] == "--config" {
		cfgPath = os.Args[2]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("database", cfg.Database.Driver).
		Str("sessions", cfg.Session.Driver).
		Msg("Starting warehouse bot")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := storage.Open(ctx, cfg.Database)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := storage.Migrate(context.Background(), db, cfg.Database.Driver); err != nil {
		logger.Fatal().Err(err).Msg("Failed to apply schema")
	}

	var sessions listing.SessionStore
	switch cfg.Session.Driver {
	case "redis":
		store, err := cache.NewRedisStore(cache.RedisConfig{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
			PoolSize: cfg.Session.Redis.PoolSize,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer store.Close()
		sessions = store
	case "memory":
		sessions = cache.NewMemoryStore()
	default:
		sessions = storage.NewDraftRepository(db)
	}

	uploader, err := media.New(context.Background(), cfg.Media, cfg.Twilio)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build media uploader")
	}

	warehouses := storage.NewWarehouseRepository(db)
	messageLogs := storage.NewMessageLogRepository(db)
	verifiedNumbers := storage.NewVerifiedNumberRepository(db)

	manager := listing.NewManager(logger,
		parser.New(parser.Config{MatchThreshold: cfg.Parser.MatchThreshold}),
		sessions, uploader, warehouses, messageLogs,
		listing.ManagerConfig{DraftTTL: cfg.Session.TTL})

	router := NewRouter(logger, cfg, manager, verifiedNumbers, messageLogs)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Error().Err(err).Msg("Server error")
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			logger.Error().Err(err).Msg("Forced shutdown failed")
		}
	}

	logger.Info().Msg("Server stopped")
}
