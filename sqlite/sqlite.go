// Package sqlite provides SQLite-based storage for pagesift: a page store
// and an exporter for cleaned batches.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Wait up to 5 seconds on lock contention instead of failing with
	// an immediate "database is locked" error.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// WAL mode gives much better write performance for file-based
	// databases; it is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db.db = conn

	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			domain TEXT NOT NULL DEFAULT '',
			search_type TEXT NOT NULL DEFAULT '',
			text_content TEXT NOT NULL DEFAULT '',
			html_content TEXT NOT NULL DEFAULT '',
			internal_links TEXT NOT NULL DEFAULT '[]',
			external_links TEXT NOT NULL DEFAULT '[]',
			depth INTEGER NOT NULL DEFAULT 0,
			latency_ms REAL NOT NULL DEFAULT 0,
			complete INTEGER NOT NULL DEFAULT 0,
			content_hash TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cleaned_pages (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			domain TEXT NOT NULL DEFAULT '',
			search_type TEXT NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT '',
			removed_count INTEGER NOT NULL DEFAULT 0,
			removed_blocks TEXT NOT NULL DEFAULT '[]',
			error TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			exported_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_pages_url ON pages(url);
		CREATE INDEX IF NOT EXISTS idx_pages_domain ON pages(domain);
		CREATE INDEX IF NOT EXISTS idx_cleaned_pages_url ON cleaned_pages(url);
	`

	_, err := db.db.Exec(schema)
	return err
}
