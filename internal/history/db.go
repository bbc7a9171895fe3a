// Package history persists command and breakpoint-hit history to a local
// SQLite database, grounded on the teacher's internal/infrastructure/sqlite
// package: the same directory/file/WAL-pragma/pre-migration-backup shape
// (db_test.go), migrated here with github.com/golang-migrate/migrate/v4
// against github.com/ncruces/go-sqlite3's pure-Go, cgo-free driver.
package history

import (
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver" // registers the "sqlite3" database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // embeds the WASM sqlite3 runtime, no cgo required

	"github.com/zxconsole/zxconsole/internal/log"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps a *sql.DB opened against the history database, with migrations
// already applied.
type DB struct {
	conn *sql.DB
}

// NewDB opens (creating if absent) the SQLite database at path, running it
// through WAL mode and the embedded migrations. Mirrors the teacher's
// NewDB: the parent directory is created with 0700, and reopening an
// existing file first copies it to path+".bak" so a migration that goes
// wrong leaves a recoverable copy behind.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := backupFile(path); err != nil {
			return nil, fmt.Errorf("backing up history db: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting %q: %w", pragma, err)
		}
	}

	if err := migrateUp(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running history migrations: %w", err)
	}

	log.Info(log.CatHistory, "history db opened", "path", path)
	return &DB{conn: conn}, nil
}

func backupFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path+".bak", src, 0o600)
}

func migrateUp(conn *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading embedded migrations: %w", err)
	}
	target, err := sqlite3.WithInstance(conn, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("preparing migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", target)
	if err != nil {
		return fmt.Errorf("constructing migrator: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Connection returns the underlying *sql.DB, for callers that need direct
// access beyond the Recorder/Reader methods (records.go).
func (db *DB) Connection() *sql.DB { return db.conn }

// Close releases the database connection.
func (db *DB) Close() error { return db.conn.Close() }
