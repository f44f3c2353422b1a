package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"dotdb/internal/value"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 0 - Initial schema (pre-migration)
// 1 - Records table with UNIQUE key
const currentSchemaVersion = 1

// SQLiteBackend stores one row per top-level record in a SQLite database.
// Operations touch exactly the one record named by the path's first
// segment, so I/O is per-record rather than per-document.
//
// The backend must be opened before use. Operations on a zero-value or
// closed backend return ErrNotConnected instead of terminating the
// process; the operation layer surfaces this as a NOT_CONNECTED failure.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path.
// Applies required pragmas and migrations automatically.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//
// This function is idempotent - safe to call multiple times.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

func (b *SQLiteBackend) connected() error {
	if b == nil || b.db == nil {
		return ErrNotConnected
	}
	return nil
}

// LoadRecord implements Backend.
func (b *SQLiteBackend) LoadRecord(ctx context.Context, key string) (value.Value, bool, error) {
	if err := b.connected(); err != nil {
		return nil, false, err
	}

	var raw string
	err := b.db.QueryRowContext(ctx, `
		SELECT value FROM records WHERE key = ?
	`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query record %q: %w", key, err)
	}

	v, err := value.Unmarshal([]byte(raw))
	if err != nil {
		return nil, false, fmt.Errorf("decode record %q: %w", key, err)
	}
	return v, true, nil
}

// SaveRecord implements Backend. Upserts the one row for key; the row id
// is assigned on first insert and preserved across updates.
func (b *SQLiteBackend) SaveRecord(ctx context.Context, key string, v value.Value) error {
	if err := b.connected(); err != nil {
		return err
	}

	raw, err := value.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %q: %w", key, err)
	}

	_, err = b.db.ExecContext(ctx, `
		INSERT INTO records (id, key, value)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, uuid.NewString(), key, string(raw))
	if err != nil {
		return fmt.Errorf("upsert record %q: %w", key, err)
	}
	return nil
}

// DeleteRecord implements Backend.
func (b *SQLiteBackend) DeleteRecord(ctx context.Context, key string) (bool, error) {
	if err := b.connected(); err != nil {
		return false, err
	}

	res, err := b.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("delete record %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete record %q: %w", key, err)
	}
	return n > 0, nil
}

// LoadAll implements Backend. Records are read in ascending key order so
// results are deterministic across calls.
func (b *SQLiteBackend) LoadAll(ctx context.Context) (value.Object, error) {
	if err := b.connected(); err != nil {
		return nil, err
	}

	rows, err := b.db.QueryContext(ctx, `
		SELECT key, value FROM records ORDER BY key ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	doc := value.Object{}
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		v, err := value.Unmarshal([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("decode record %q: %w", key, err)
		}
		doc[key] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return doc, nil
}

// Clear implements Backend.
func (b *SQLiteBackend) Clear(ctx context.Context) error {
	if err := b.connected(); err != nil {
		return err
	}
	if _, err := b.db.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// applySchema creates tables if they don't exist and records the schema
// version. Idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}
