// Package storage provides SQLite-based persistence for sketches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-sketch/internal/codec"
	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
)

// ErrNotFound is returned when no sketch has the requested name.
var ErrNotFound = errors.New("storage: sketch not found")

// Store manages the SQLite database connection for sketch persistence.
type Store struct {
	db    *sql.DB
	codec codec.Codec
}

// SketchInfo describes a stored sketch without its cells.
type SketchInfo struct {
	ID        string
	Name      string
	Width     int
	Height    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows one writer; SSH sessions share this store
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, codec: codec.Binary{}}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sketches (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sketches_updated ON sketches(updated_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSketch stores the canvas under name, replacing any sketch with the
// same name. The sketch keeps its ID and creation time across saves.
func (s *Store) SaveSketch(name string, canvas *core.Canvas) error {
	if name == "" {
		return fmt.Errorf("storage: sketch name is empty")
	}

	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, canvas.Buffer()); err != nil {
		return fmt.Errorf("storage: cannot encode sketch %q: %w", name, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO sketches (id, name, width, height, data)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   width = excluded.width,
		   height = excluded.height,
		   data = excluded.data,
		   updated_at = CURRENT_TIMESTAMP`,
		uuid.NewString(), name, canvas.Width(), canvas.Height(), buf.Bytes(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save sketch %q: %w", name, err)
	}
	return nil
}

// LoadSketch reads the sketch stored under name.
func (s *Store) LoadSketch(name string) (*core.Canvas, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM sketches WHERE name = ?", name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sketch %q: %w", name, err)
	}

	rows, err := s.codec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("storage: sketch %q: %w", name, err)
	}

	canvas, err := core.NewCanvasWithBuffer(rows)
	if err != nil {
		return nil, fmt.Errorf("storage: sketch %q: %w", name, err)
	}
	return canvas, nil
}

// ListSketches returns all stored sketches, most recently updated first.
func (s *Store) ListSketches() ([]SketchInfo, error) {
	rows, err := s.db.Query(
		`SELECT id, name, width, height, created_at, updated_at
		 FROM sketches
		 ORDER BY updated_at DESC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sketches: %w", err)
	}
	defer rows.Close()

	var infos []SketchInfo
	for rows.Next() {
		var info SketchInfo
		var createdAt, updatedAt any
		if err := rows.Scan(&info.ID, &info.Name, &info.Width, &info.Height, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTime(createdAt)
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteSketch removes the sketch stored under name.
func (s *Store) DeleteSketch(name string) error {
	res, err := s.db.Exec("DELETE FROM sketches WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete sketch %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
