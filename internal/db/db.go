// Package db provides SQLite database access for Showcase.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/opencode-ai/showcase/internal/logging"
)

// FileName is the database file created inside the data directory.
const FileName = "showcase.db"

// DB wraps a SQLite handle with the component logger.
type DB struct {
	*sql.DB
	logger zerolog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id TEXT PRIMARY KEY,
	timestamp TEXT NOT NULL,
	type TEXT NOT NULL,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	payload_json TEXT,
	metadata_json TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_entity ON events(entity_type, entity_id, timestamp);

CREATE TABLE IF NOT EXISTS tour_progress (
	tour TEXT PRIMARY KEY,
	runs INTEGER NOT NULL DEFAULT 0,
	last_run_at TEXT NOT NULL,
	completed_at TEXT
);
`

// Open opens (creating if needed) the database inside dataDir.
func Open(ctx context.Context, dataDir string) (*DB, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data dir is required")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return OpenPath(ctx, filepath.Join(dataDir, FileName))
}

// OpenPath opens the database at path and applies the schema.
func OpenPath(ctx context.Context, path string) (*DB, error) {
	handle, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	handle.SetMaxOpenConns(1)

	db := &DB{DB: handle, logger: logging.Component("db")}
	if err := db.migrate(ctx); err != nil {
		_ = handle.Close()
		return nil, err
	}

	db.logger.Debug().Str("path", path).Msg("database opened")
	return db, nil
}

func (db *DB) migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// timeLayout is fixed width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
