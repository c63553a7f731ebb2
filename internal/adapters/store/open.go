package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"radio-garden-client/internal/config"
	"radio-garden-client/internal/platform/db"
	"radio-garden-client/internal/ports"
)

// Open selects the place store from cfg: Postgres when a URL is set,
// otherwise SQLite at Path. The schema is created if missing. The returned
// *sql.DB must be closed by the caller.
func Open(ctx context.Context, cfg config.DatabaseConfig) (ports.PlaceRepository, *sql.DB, error) {
	if cfg.URL != "" {
		conn, err := db.Open(cfg.URL)
		if err != nil {
			return nil, nil, err
		}
		if err := InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		return NewSQLPlaceStore(conn), conn, nil
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("open place store: create %q: %w", dir, err)
		}
	}

	conn, err := db.OpenSqlite(cfg.Path)
	if err != nil {
		return nil, nil, err
	}
	if err := InitSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return NewSqlitePlaceStore(conn), conn, nil
}
