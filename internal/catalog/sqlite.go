package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"
)

const stationsSchema = `
CREATE TABLE IF NOT EXISTS stations (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	stream TEXT NOT NULL DEFAULT '',
	image TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_stations_position ON stations(position);
`

func readSQLite(ctx context.Context, path string) ([]Station, int, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, 0, fmt.Errorf("open sqlite catalog: %w", err)
	}
	defer db.Close()
	// The pragma applies per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, 0, fmt.Errorf("apply pragma: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT id, name, stream, image FROM stations ORDER BY position, id`)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: query stations: %v", ErrFormat, err)
	}
	defer rows.Close()

	var (
		stations []Station
		skipped  int
	)
	for rows.Next() {
		var st Station
		if err := rows.Scan(&st.ID, &st.Name, &st.StreamURL, &st.ImageURL); err != nil {
			return nil, 0, fmt.Errorf("scan station: %w", err)
		}
		st.Name = strings.TrimSpace(st.Name)
		if st.Name == "" {
			skipped++
			continue
		}
		st.StreamURL = strings.TrimSpace(st.StreamURL)
		st.ImageURL = strings.TrimSpace(st.ImageURL)
		stations = append(stations, st)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate stations: %w", err)
	}
	return stations, skipped, nil
}

// writeSQLite creates a fresh database at path holding the stations.
func writeSQLite(ctx context.Context, path string, stations []Station) (err error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale database: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite catalog: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close sqlite catalog: %w", closeErr)
		}
	}()

	if _, err := db.ExecContext(ctx, stationsSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO stations (id, position, name, stream, image) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, st := range stations {
		id := st.ID
		if id == "" {
			id = fmt.Sprintf("station_%d", i+1)
		}
		if _, err := stmt.ExecContext(ctx, id, i, st.Name, st.StreamURL, st.ImageURL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert station %q: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit stations: %w", err)
	}
	return nil
}
