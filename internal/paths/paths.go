// Package paths owns the candidate directory registry: the rows wayfind's
// fuzzy search ranks. Search happens inside SQLite: a wildcard pre-filter
// keeps only subsequence matches, and fuzzy_score orders what survives.
package paths

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"wayfind/internal/config"
)

var ErrPathExists = errors.New("path already registered")

// Entry is a registered directory.
type Entry struct {
	ID          int64
	Path        string
	Name        string
	AddedAt     time.Time
	LastVisited time.Time
	VisitCount  int
}

// FilterValue implements tui.Item.
func (e Entry) FilterValue() string { return e.Path }

// Title implements tui.Item.
func (e Entry) Title() string { return e.Name }

// Description implements tui.Item.
func (e Entry) Description() string {
	if e.VisitCount > 0 {
		return fmt.Sprintf("%s (%d visits)", e.Path, e.VisitCount)
	}
	return e.Path
}

// Stats holds aggregate registry statistics.
type Stats struct {
	PathCount   int
	VisitCount  int
	MostVisited string
	LastVisited string
}

// Store owns registry persistence and search.
type Store struct {
	db     *sql.DB
	search config.SearchConfig
}

// NewStore creates a Store backed by db, ranking with the given search
// settings.
func NewStore(db *sql.DB, search config.SearchConfig) *Store {
	return &Store{db: db, search: search}
}

// Add registers a directory. An empty path means the current directory.
func (s *Store) Add(path string) (*Entry, error) {
	if strings.TrimSpace(path) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve cwd: %w", err)
		}
		path = cwd
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", abs)
	}

	name := filepath.Base(abs)

	var existing string
	err = s.db.QueryRow(`SELECT path FROM paths WHERE path = ?`, abs).Scan(&existing)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrPathExists, existing)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check duplicates: %w", err)
	}

	res, err := s.db.Exec(
		`INSERT INTO paths (path, name, added_at) VALUES (?, ?, ?)`,
		abs, name, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("insert path: %w", err)
	}
	id, _ := res.LastInsertId()

	return &Entry{ID: id, Path: abs, Name: name}, nil
}

// Remove deletes a registered path (exact match on the stored absolute path).
func (s *Store) Remove(path string) error {
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	res, err := s.db.Exec(`DELETE FROM paths WHERE path = ?`, abs)
	if err != nil {
		return fmt.Errorf("remove path: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("path %q not registered", abs)
	}
	return nil
}

// List returns all registered paths ordered by path.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, path, name, added_at, last_visited, visit_count FROM paths ORDER BY path ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list paths: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// Get returns one entry by its stored absolute path.
func (s *Store) Get(path string) (*Entry, error) {
	abs, err := filepath.Abs(strings.TrimSpace(path))
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	row := s.db.QueryRow(
		`SELECT id, path, name, added_at, last_visited, visit_count FROM paths WHERE path = ?`, abs,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("path %q not registered", abs)
	}
	return e, err
}

// Visit records a jump to path: one visits row (uuid id) plus the
// denormalized last_visited/visit_count on the entry itself.
func (s *Store) Visit(path string) error {
	e, err := s.Get(path)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin visit: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO visits (id, path_id, visited_at) VALUES (?, ?, ?)`,
		uuid.New().String(), e.ID, now,
	); err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	if _, err := tx.Exec(
		`UPDATE paths SET last_visited = ?, visit_count = visit_count + 1 WHERE id = ?`,
		now, e.ID,
	); err != nil {
		return fmt.Errorf("update visit count: %w", err)
	}
	return tx.Commit()
}

// GetStats returns aggregate registry statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM paths`).Scan(&stats.PathCount); err != nil {
		return nil, fmt.Errorf("count paths: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM visits`).Scan(&stats.VisitCount); err != nil {
		return nil, fmt.Errorf("count visits: %w", err)
	}

	var most, last sql.NullString
	s.db.QueryRow(
		`SELECT path FROM paths WHERE visit_count > 0 ORDER BY visit_count DESC, path ASC LIMIT 1`,
	).Scan(&most)
	s.db.QueryRow(
		`SELECT path FROM paths WHERE last_visited IS NOT NULL ORDER BY last_visited DESC LIMIT 1`,
	).Scan(&last)
	stats.MostVisited = most.String
	stats.LastVisited = last.String

	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var e Entry
	var added string
	var visited sql.NullString
	if err := row.Scan(&e.ID, &e.Path, &e.Name, &added, &visited, &e.VisitCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan path: %w", err)
	}
	e.AddedAt = parseTime(added)
	if visited.Valid {
		e.LastVisited = parseTime(visited.String)
	}
	return &e, nil
}

func parseTime(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
