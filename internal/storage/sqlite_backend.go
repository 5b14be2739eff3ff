package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteBackend stores each key as a row in a single kv table. This is the
// default backend; it gives atomic per-key writes without the whole-file
// rewrite the JSON backend does.
type SQLiteBackend struct {
	path string
	db   *sql.DB
}

func NewSQLiteBackend(path string) *SQLiteBackend {
	return &SQLiteBackend{path: path}
}

// Open creates the data directory and kv table if needed. Must be called
// before any Get/Set/Remove.
func (b *SQLiteBackend) Open() error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	b.db = db
	return nil
}

func (b *SQLiteBackend) Get(key string) ([]byte, bool, error) {
	if b.db == nil {
		return nil, false, fmt.Errorf("storage not opened")
	}

	var value []byte
	err := b.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (b *SQLiteBackend) Set(key string, value []byte) error {
	if b.db == nil {
		return fmt.Errorf("storage not opened")
	}

	_, err := b.db.Exec("INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
	return err
}

func (b *SQLiteBackend) Remove(key string) error {
	if b.db == nil {
		return fmt.Errorf("storage not opened")
	}

	_, err := b.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}

// GetPath returns the path to the underlying database file.
func (b *SQLiteBackend) GetPath() string {
	return b.path
}
