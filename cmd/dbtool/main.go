package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"

	"radio-garden-client/internal/adapters/store"
	"radio-garden-client/internal/config"
	"radio-garden-client/internal/platform/logging"
	"radio-garden-client/internal/services"
	"radio-garden-client/radiogarden"
)

// dbtool prepares the place store: it creates the schema and then either
// seeds it from a saved places file or copies the live places directory.
func main() {
	_ = godotenv.Load()

	seedPath := flag.String("seed", config.Get("SEED_PATH", ""), "seed places from a saved /ara/content/places JSON file")
	sync := flag.Bool("sync", false, "copy the live places directory into the store")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Logger().Fatal().Err(err).Msg("load config")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logging.Logger()

	ctx, cancel := context.WithTimeout(log.WithContext(context.Background()), 5*time.Minute)
	defer cancel()

	log.Info().Msg("Initializing place store schema...")
	repo, db, err := store.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("schema initialization failed")
	}
	defer db.Close()
	log.Info().Msg("Schema ready.")

	code := 0
	switch {
	case *seedPath != "":
		n, err := store.SeedFromJSON(ctx, repo, *seedPath)
		if err != nil {
			log.Error().Err(err).Msg("seeding failed")
			code = 1
			break
		}
		log.Info().Int("places", n).Msg("Seeding complete.")

	case *sync:
		client := radiogarden.New(
			radiogarden.WithBaseURL(cfg.RadioGarden.BaseURL),
			radiogarden.WithTimeout(cfg.RadioGarden.Timeout),
			radiogarden.WithUserAgent(cfg.RadioGarden.UserAgent),
		)
		n, err := services.SyncPlaces(ctx, client, repo)
		if err != nil {
			log.Error().Err(err).Msg("sync failed")
			code = 1
			break
		}
		log.Info().Int("places", n).Msg("Sync complete.")
	}

	if code != 0 {
		db.Close()
		os.Exit(code)
	}
}
