package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rentit/campus-rentals-api/internal/api"
	"github.com/rentit/campus-rentals-api/internal/infrastructure/config"
	mongorepo "github.com/rentit/campus-rentals-api/internal/infrastructure/db/mongo"
	"github.com/rentit/campus-rentals-api/internal/infrastructure/identity"
	"github.com/rentit/campus-rentals-api/internal/infrastructure/storage"
	"github.com/rentit/campus-rentals-api/internal/infrastructure/vision"
	"github.com/rentit/campus-rentals-api/pkg/logger"

	_ "github.com/rentit/campus-rentals-api/docs"
)

// @title           Campus Rentals API
// @version         1.0
// @description     Campus-rental marketplace backend: Google sign-in restricted to a campus email domain, item listings with availability windows, and AI-assisted image tagging.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; this is the one place stderr is used directly.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Document store ---
	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := mongorepo.NewListingRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create listing indexes")
	}

	// --- External services & upload storage ---
	store, err := storage.NewLocalStore(cfg.UploadDir, "/uploads")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare uploads directory")
	}

	deps := api.Deps{
		Verifier: identity.NewGoogleVerifier(cfg.GoogleClientID, ""),
		Advisor:  vision.NewGeminiClient(cfg.GeminiAPIKey, "", ""),
		Store:    store,
	}

	e := api.NewRouter(db, cfg, deps, log)

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
