package db

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

// OpenTest opens a migrated SQLite database in a per-test temp directory.
func OpenTest(tb testing.TB) *sqlx.DB {
	tb.Helper()

	dsn := filepath.Join(tb.TempDir(), "footprint.db") + "?_pragma=foreign_keys(1)&_time_format=sqlite"
	database, err := Init("sqlite", dsn)
	if err != nil {
		tb.Fatalf("open test database: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close() })

	// modernc sqlite serialises writers; one connection keeps tests deterministic.
	database.SetMaxOpenConns(1)

	if err := RunMigrations(database.DB, "sqlite"); err != nil {
		tb.Fatalf("migrate test database: %v", err)
	}
	return database
}
