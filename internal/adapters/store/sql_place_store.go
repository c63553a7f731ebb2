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

// SQLPlaceStore is a Postgres-backed store for the places directory.
type SQLPlaceStore struct {
	DB *sql.DB
}

func NewSQLPlaceStore(db *sql.DB) *SQLPlaceStore {
	return &SQLPlaceStore{DB: db}
}

// Return all stored places ordered by id.
func (s *SQLPlaceStore) ListPlaces(ctx context.Context) (_ []radiogarden.Place, err error) {
	defer obs.Time(ctx, "places.store.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("place store: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, title, country, url, size, boost, lon, lat
	FROM places
	ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// Fetch stored places for the given ids. Unknown ids are absent from the result.
func (s *SQLPlaceStore) GetMany(
	ctx context.Context,
	ids []string,
) (_ map[string]radiogarden.Place, err error) {
	defer obs.Time(ctx, "places.store.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("place store: db is nil")
	}

	uniq := uniqueIDs(ids)
	if len(uniq) == 0 {
		return map[string]radiogarden.Place{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, title, country, url, size, boost, lon, lat
	FROM places
	WHERE id = ANY($1::text[]);
	`, uniq)
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

// Insert or update the given places.
func (s *SQLPlaceStore) PutMany(ctx context.Context, places []radiogarden.Place) (err error) {
	defer obs.Time(ctx, "places.store.PutMany")(&err)

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
	INSERT INTO places (id, title, country, url, size, boost, lon, lat)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE
	SET title = EXCLUDED.title,
		country = EXCLUDED.country,
		url = EXCLUDED.url,
		size = EXCLUDED.size,
		boost = EXCLUDED.boost,
		lon = EXCLUDED.lon,
		lat = EXCLUDED.lat;
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

func scanPlaces(rows *sql.Rows) ([]radiogarden.Place, error) {
	out := make([]radiogarden.Place, 0, 64)
	for rows.Next() {
		var p radiogarden.Place
		if err := rows.Scan(&p.ID, &p.Title, &p.Country, &p.URL, &p.Size, &p.Boost, &p.Geo.Lon, &p.Geo.Lat); err != nil {
			return nil, fmt.Errorf("scan places: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan places: row iteration: %w", err)
	}
	return out, nil
}

// uniqueIDs trims, drops blanks and de-duplicates while keeping order.
func uniqueIDs(ids []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}
	return uniq
}
