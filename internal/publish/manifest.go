package publish

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry records one published object. Destination identifies the store
// and bucket, Key is the full object key inside it.
type Entry struct {
	Destination string
	Key         string
	Checksum    string
	Size        int64
	RunID       string
	PublishedAt time.Time
}

// Manifest tracks what has been published using SQLite.
type Manifest struct {
	db *sql.DB
}

// OpenManifest opens or creates the manifest database at dbPath.
func OpenManifest(dbPath string) (*Manifest, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create manifest directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	m := &Manifest{db: db}
	if err := m.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	return m, nil
}

func (m *Manifest) initialize() error {
	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS published_objects (
			destination TEXT NOT NULL,
			key TEXT NOT NULL,
			checksum TEXT NOT NULL,
			size INTEGER NOT NULL,
			run_id TEXT NOT NULL,
			published_at DATETIME NOT NULL,
			PRIMARY KEY (destination, key)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create published_objects table: %w", err)
	}
	return nil
}

// Checksum returns the recorded checksum of key at destination. ok is false
// when the key has never been published there.
func (m *Manifest) Checksum(ctx context.Context, destination, key string) (checksum string, ok bool, err error) {
	err = m.db.QueryRowContext(ctx,
		`SELECT checksum FROM published_objects WHERE destination = ? AND key = ?`,
		destination, key,
	).Scan(&checksum)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query manifest: %w", err)
	}
	return checksum, true, nil
}

// Record stores e, replacing any previous entry for the same key.
func (m *Manifest) Record(ctx context.Context, e Entry) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO published_objects (destination, key, checksum, size, run_id, published_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (destination, key) DO UPDATE SET
			checksum = excluded.checksum,
			size = excluded.size,
			run_id = excluded.run_id,
			published_at = excluded.published_at
	`, e.Destination, e.Key, e.Checksum, e.Size, e.RunID, e.PublishedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", e.Key, err)
	}
	return nil
}

// List returns every entry of destination ordered by key.
func (m *Manifest) List(ctx context.Context, destination string) ([]Entry, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT destination, key, checksum, size, run_id, published_at
		FROM published_objects WHERE destination = ? ORDER BY key
	`, destination)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifest: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Destination, &e.Key, &e.Checksum, &e.Size, &e.RunID, &e.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan manifest row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (m *Manifest) Close() error {
	return m.db.Close()
}
