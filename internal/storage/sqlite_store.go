package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite"
)

const (
	databaseFileName = "focusdeck.db"
	sqliteDriverName = "sqlite"
	queryTimeout     = 5 * time.Second
)

const schemaKV = `
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL
);
`

const (
	upsertValueSQL = `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	selectValueSQL = `SELECT value FROM kv WHERE key = ?`
)

// SQLiteStore keeps YAML-encoded values in a SQLite table.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := InitDB(path)
	if err != nil {
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

// NewSQLiteStore wraps an open database that already has the kv schema.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// InitDB opens a SQLite file and ensures the kv table exists.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// A single writer keeps SQLite out of SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaKV); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply kv schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}

// Get decodes the value stored under key into out.
func (store *SQLiteStore) Get(key string, out any) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	return store.GetContext(ctx, key, out)
}

// GetContext is Get with a caller-supplied context.
func (store *SQLiteStore) GetContext(ctx context.Context, key string, out any) (bool, error) {
	var raw string
	if err := store.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("select %s: %w", key, err)
	}
	if err := yaml.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set encodes value and upserts it under key.
func (store *SQLiteStore) Set(key string, value any) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	return store.SetContext(ctx, key, value)
}

// SetContext is Set with a caller-supplied context.
func (store *SQLiteStore) SetContext(ctx context.Context, key string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if _, err := store.db.ExecContext(ctx, upsertValueSQL, key, string(data), store.now().UTC()); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (store *SQLiteStore) Close() error {
	return store.db.Close()
}
