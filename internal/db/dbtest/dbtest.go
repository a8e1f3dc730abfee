// Package dbtest opens throwaway migrated SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/SyedqaderEng/financeOS-sub001/internal/db"
	"github.com/jmoiron/sqlx"
)

// DSNOptions mirror the production SQLite defaults: foreign keys on,
// immediate write transactions and a busy timeout so concurrent writers
// queue instead of failing.
const DSNOptions = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_txlock=immediate"

// New returns a migrated database living under t.TempDir().
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	database, err := db.Init(db.DriverSQLite, path+DSNOptions)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	err = db.RunMigrations(database.DB, db.DriverSQLite)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return database
}
