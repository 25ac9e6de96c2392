package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"wayfind/internal/config"
)

// DB wraps the SQLite connection.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the wayfind database and brings the connection's
// comparison mode in line with the search config: PRAGMA case_sensitive_like
// and the fuzzy_score function are driven by the same flag, so the wildcard
// pre-filter and the ranking never disagree about what matches.
func Open(cfg *config.Config) (*DB, error) {
	RegisterScoreFunc()
	SetCaseSensitive(cfg.Search.CaseSensitive)

	paths := config.GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("creating data dirs: %w", err)
	}

	conn, err := sql.Open("sqlite", paths.DBFile+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
		fmt.Sprintf("PRAGMA case_sensitive_like=%s", onOff(cfg.Search.CaseSensitive)),
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Conn returns the raw sql.DB for direct queries.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// migrate runs all schema migrations.
func (db *DB) migrate() error {
	migrations := []string{
		// Candidate directories.
		`CREATE TABLE IF NOT EXISTS paths (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			path TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			added_at TEXT NOT NULL,
			last_visited TEXT,
			visit_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_paths_name ON paths(name)`,
		// One row per jump, for stats.
		`CREATE TABLE IF NOT EXISTS visits (
			id TEXT PRIMARY KEY,
			path_id INTEGER NOT NULL REFERENCES paths(id) ON DELETE CASCADE,
			visited_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_visits_path_id ON visits(path_id)`,
		// Key-value store for misc state.
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
