// Package nodecache persists successful url -> node-id resolutions in a
// SQLite database so repeated resolver runs can reuse them without
// re-fetching pages.
package nodecache

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"
)

// Cache is a single-writer resolution store. Each opened cache mints a run
// id that is stamped on every row it writes.
type Cache struct {
	db    *sql.DB
	runID string
}

// Open opens (creating if needed) a cache database with WAL mode enabled.
func Open(ctx context.Context, path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Cache{
		db:    db,
		runID: ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String(),
	}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS resolutions (
	url TEXT PRIMARY KEY,
	node_id TEXT NOT NULL,
	run_id TEXT,
	resolved_at TEXT
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init cache schema: %w", err)
	}
	return nil
}

// RunID identifies the run that opened this cache.
func (c *Cache) RunID() string {
	return c.runID
}

// Get returns the cached node id for url, if any.
func (c *Cache) Get(ctx context.Context, url string) (string, bool, error) {
	var id string
	err := c.db.QueryRowContext(ctx,
		"SELECT node_id FROM resolutions WHERE url = ?", url).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Put records a successful resolution, stamped with the cache's run id and a
// UTC timestamp. Empty ids are not cached; not-found stays a per-run outcome.
func (c *Cache) Put(ctx context.Context, url, nodeID string) error {
	if nodeID == "" {
		return nil
	}
	_, err := c.db.ExecContext(ctx, `
INSERT INTO resolutions (url, node_id, run_id, resolved_at) VALUES (?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
	node_id = excluded.node_id,
	run_id = excluded.run_id,
	resolved_at = excluded.resolved_at`,
		url, nodeID, c.runID, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}
