package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// sqliteStorage implements the Storage interface using SQLite.
type sqliteStorage struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// newSQLite opens (or creates) the database at dbPath.
func newSQLite(dbPath string) (*sqliteStorage, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &sqliteStorage{db: db}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return s, nil
}

// createSchema creates the database schema
func (s *sqliteStorage) createSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS images (
		id         TEXT PRIMARY KEY,
		url        TEXT NOT NULL,
		prompt     TEXT NOT NULL DEFAULT '',
		model      TEXT NOT NULL,
		timestamp  INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_images_timestamp ON images(timestamp);

	CREATE TABLE IF NOT EXISTS request_logs (
		id            TEXT PRIMARY KEY,
		request_id    TEXT NOT NULL,
		model         TEXT NOT NULL,
		prompt_tokens INTEGER DEFAULT 0,
		image_count   INTEGER DEFAULT 0,
		status_code   INTEGER,
		error_message TEXT,
		duration_ms   INTEGER,
		created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_logs_created ON request_logs(created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *sqliteStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

// generateID creates a new unique ID with a prefix
func generateID(prefix string) string {
	return prefix + "_" + uuid.New().String()[:8]
}
