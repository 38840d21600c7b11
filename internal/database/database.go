// Package database provides SQLite store management.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver registration
)

// MemoryPath selects a private in-memory database. Used by tests.
const MemoryPath = ":memory:"

// Config holds database configuration.
type Config struct {
	// Path is the location of the database file on disk,
	// or MemoryPath for an in-memory store.
	Path string
}

// ConfigFromEnv creates a Config from environment variables.
func ConfigFromEnv() Config {
	return Config{
		Path: getEnvOrDefault("DB_PATH", "./data/aqview.db"),
	}
}

// DSN returns the SQLite connection string.
func (c Config) DSN() string {
	if c.Path == MemoryPath {
		// WAL is meaningless for an in-memory store.
		return "file::memory:?_busy_timeout=5000&_foreign_keys=on"
	}
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", c.Path)
}

// Open opens the database, creating the file (and its parent directory)
// if absent, and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Path != MemoryPath {
		if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite serializes writers itself; a single connection avoids lock
	// contention and keeps an in-memory store on one database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
