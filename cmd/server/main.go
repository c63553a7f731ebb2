package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"radio-garden-client/internal/adapters/store"
	"radio-garden-client/internal/api"
	"radio-garden-client/internal/config"
	"radio-garden-client/internal/platform/logging"
	"radio-garden-client/radiogarden"
)

// main is the application composition root.
// It wires the directory client and the place store behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Logger().Fatal().Err(err).Msg("load config")
	}

	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logging.Logger()
	if envErr != nil {
		log.Info().Msg("No .env file found (using environment variables)")
	}

	ctx := log.WithContext(context.Background())

	repo, db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("open place store")
	}
	defer db.Close()

	client := radiogarden.New(
		radiogarden.WithBaseURL(cfg.RadioGarden.BaseURL),
		radiogarden.WithTimeout(cfg.RadioGarden.Timeout),
		radiogarden.WithUserAgent(cfg.RadioGarden.UserAgent),
	)

	// Seed demo data on startup for local runs.
	if cfg.Database.SeedPath != "" {
		n, err := store.SeedFromJSON(ctx, repo, cfg.Database.SeedPath)
		if err != nil {
			log.Fatal().Err(err).Msg("seed place store")
		}
		log.Info().Int("places", n).Str("path", cfg.Database.SeedPath).Msg("place store seeded")
	}

	router := api.NewRouter(client, repo, *log, cfg.Nearby.Limit)

	log.Info().Str("addr", ":"+cfg.Server.Port).Msg("Server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("server stopped")
		db.Close()
		os.Exit(1)
	}
}
