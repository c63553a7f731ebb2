package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"radio-garden-client/internal/platform/obs"
	"radio-garden-client/radiogarden"
)

// SQLite backed store for the places directory.
type SqlitePlaceStore struct {
	DB *sql.DB
}

func NewSqlitePlaceStore(db *sql.DB) *SqlitePlaceStore {
	return &SqlitePlaceStore{DB: db}
}

// Return all stored places ordered by id.
func (s *SqlitePlaceStore) ListPlaces(ctx context.Context) (_ []radiogarden.Place, err error) {
	defer obs.Time(ctx, "places.sqlite.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("place store: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		id,
		title,
		country,
		url,
		size,
		boost,
		lon,
		lat
	FROM places
	ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// Fetch stored places for the given ids.
func (s *SqlitePlaceStore) GetMany(
	ctx context.Context,
	ids []string,
) (_ map[string]radiogarden.Place, err error) {
	defer obs.Time(ctx, "places.sqlite.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("place store: db is nil")
	}

	uniq := uniqueIDs(ids)
	if len(uniq) == 0 {
		return map[string]radiogarden.Place{}, nil
	}

	ph := make([]string, 0, len(uniq))
	args := make([]any, 0, len(uniq))
	for _, id := range uniq {
		ph = append(ph, "?")
		args = append(args, id)
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		id,
		title,
		country,
		url,
		size,
		boost,
		lon,
		lat
	FROM places
	WHERE id IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get places: query places table: %w", err)
	}
	defer rows.Close()

	list, err := scanPlaces(rows)
	if err != nil {
		return nil, err
	}

	out := make(map[string]radiogarden.Place, len(list))
	for _, p := range list {
		out[p.ID] = p
	}
	return out, nil
}

// Insert or replace the given places.
func (s *SqlitePlaceStore) PutMany(ctx context.Context, places []radiogarden.Place) (err error) {
	defer obs.Time(ctx, "places.sqlite.PutMany")(&err)

	if s.DB == nil {
		return errors.New("place store: db is nil")
	}

	if len(places) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert places: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO places (
		id,
		title,
		country,
		url,
		size,
		boost,
		lon,
		lat
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("insert places: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("insert places: empty place id")
		}

		if _, err := stmt.ExecContext(ctx, p.ID, p.Title, p.Country, p.URL, p.Size, p.Boost, p.Geo.Lon, p.Geo.Lat); err != nil {
			return fmt.Errorf("insert places id=%q: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert places commit: %w", err)
	}

	return nil
}
