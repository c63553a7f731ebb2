package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"radio-garden-client/internal/ports"
	"radio-garden-client/radiogarden"
)

// Initialize the places schema. The statements are valid for both SQLite
// and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		country TEXT NOT NULL,
		url TEXT NOT NULL,
		size INTEGER NOT NULL,
		boost BOOLEAN NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		lat DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_country
	ON places(country);
	`

	statements := []string{
		createPlacesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the store from a saved places response (the body of
// /ara/content/places). Returns the number of places written.
func SeedFromJSON(ctx context.Context, repo ports.PlaceRepository, jsonPath string) (int, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data radiogarden.PlacesResponse
	if err := json.Unmarshal(b, &data); err != nil {
		return 0, fmt.Errorf("seed places: parse json: %w", err)
	}

	for i, p := range data.Data.List {
		if p.ID == "" {
			return 0, fmt.Errorf("seed places: item at index %d: id cannot be empty", i+1)
		}
	}

	if err := repo.PutMany(ctx, data.Data.List); err != nil {
		return 0, fmt.Errorf("seed places: %w", err)
	}

	return len(data.Data.List), nil
}
