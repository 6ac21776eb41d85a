// Package store implements SQLite persistence for call history, the
// blacklist/whitelist, and coding projects. Connection setup (WAL DSN,
// single writer connection) is grounded in flowpbx-flowpbx's
// internal/database/database.go; the migration mechanism takes a simpler
// approach: additive column probing rather than an embedded-file migration
// runner, so schema upgrades here are a sequence of "does this column exist"
// checks followed by ALTER TABLE ADD COLUMN.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection opened against the gateway's SQLite file.
type DB struct {
	*sql.DB
	logger *slog.Logger
}

// Open creates the parent directory if needed, opens path in WAL mode with a
// single writer connection (SQLite's recommended topology for one process),
// and runs schema setup/migration.
func Open(path string, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("store: creating data directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(on)", path)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: opening database: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: pinging database: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := &DB{DB: sqlDB, logger: logger}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("store: migrating: %w", err)
	}
	logger.Info("store: database opened", "path", path)
	return db, nil
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS calls (
	id TEXT PRIMARY KEY,
	caller_id TEXT NOT NULL,
	started_at DATETIME NOT NULL,
	ended_at DATETIME,
	model_key TEXT,
	cost_usd REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS blacklist (
	caller_id TEXT PRIMARY KEY,
	reason TEXT,
	blocked_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS whitelist (
	caller_id TEXT PRIMARY KEY,
	note TEXT,
	added_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS failed_unlock_calls (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	caller_id TEXT NOT NULL,
	failed_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_failed_unlock_calls_caller ON failed_unlock_calls(caller_id, failed_at);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS coding_sessions (
	project_id TEXT PRIMARY KEY,
	session_id TEXT,
	updated_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	project_id TEXT,
	title TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'open',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS ideas (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	category TEXT,
	status TEXT NOT NULL DEFAULT 'open',
	tags TEXT,
	notes TEXT NOT NULL DEFAULT '[]',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);
`

// currentSchemaVersion is bumped whenever additiveMigrations grows; it is
// the only row ever written to schema_version.
const currentSchemaVersion = 1

// columnAdd is one additive schema change: add column to table with the
// given SQL column definition, applied only if the column is missing.
type columnAdd struct {
	table  string
	column string
	ddl    string
}

// additiveMigrations lists every column ever added after the base schema.
// Each is applied by probing with "SELECT col FROM table LIMIT 0" and
// running ALTER TABLE ADD COLUMN if that probe fails, so every node
// converges on the same schema regardless of which version created the file.
var additiveMigrations = []columnAdd{
	{"calls", "access_code_strikes", "ALTER TABLE calls ADD COLUMN access_code_strikes INTEGER NOT NULL DEFAULT 0"},
	{"calls", "agent_path", "ALTER TABLE calls ADD COLUMN agent_path TEXT"},
}

func (db *DB) migrate() error {
	if _, err := db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("base schema: %w", err)
	}
	for _, m := range additiveMigrations {
		if db.hasColumn(m.table, m.column) {
			continue
		}
		if _, err := db.Exec(m.ddl); err != nil {
			return fmt.Errorf("adding column %s.%s: %w", m.table, m.column, err)
		}
		db.logger.Info("store: added column", "table", m.table, "column", m.column)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		return fmt.Errorf("checking schema_version: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
			return fmt.Errorf("seeding schema_version: %w", err)
		}
	} else if _, err := db.Exec("UPDATE schema_version SET version = ?", currentSchemaVersion); err != nil {
		return fmt.Errorf("updating schema_version: %w", err)
	}
	return nil
}

// hasColumn probes for a column's existence with a SELECT that can only
// succeed if the column is present.
func (db *DB) hasColumn(table, column string) bool {
	query := fmt.Sprintf("SELECT %s FROM %s LIMIT 0", column, table)
	_, err := db.Query(query)
	return err == nil
}
