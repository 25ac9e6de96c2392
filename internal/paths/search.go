package paths

import (
	"database/sql"
	"errors"
	"fmt"

	"wayfind/internal/fuzzy"
)

// Match is a search hit with its ranking score. Lower sorts first.
type Match struct {
	Entry
	Score int
}

// ErrNoMatch means no registered path contains the query as a subsequence.
var ErrNoMatch = errors.New("no matching path")

// Search ranks registered paths against query, best match first.
//
// Both stages run in one SQL statement: a LIKE pattern built from the query
// keeps only rows containing the query characters in order, then fuzzy_score
// orders the survivors ascending. The pre-filter guarantees every scored row
// has an alignment, so fuzzy_score never fails here unless the LIKE mode and
// scoring mode disagree, which store.Open prevents by configuring both from
// the same setting.
func (s *Store) Search(query string) ([]Match, error) {
	q := `SELECT id, path, name, added_at, last_visited, visit_count,
			fuzzy_score(?, path) AS score
		FROM paths
		WHERE path LIKE ? ESCAPE '\'
		ORDER BY score ASC, length(path) ASC, path ASC`
	args := []any{query, fuzzy.LikePattern(query)}
	if s.search.Limit > 0 {
		q += ` LIMIT ?`
		args = append(args, s.search.Limit)
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("search paths: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		var added string
		var visited sql.NullString
		if err := rows.Scan(&m.ID, &m.Path, &m.Name, &added, &visited, &m.VisitCount, &m.Score); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		m.AddedAt = parseTime(added)
		if visited.Valid {
			m.LastVisited = parseTime(visited.String)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search paths: %w", err)
	}
	return matches, nil
}

// Best returns the single best match for query.
func (s *Store) Best(query string) (*Match, error) {
	matches, err := s.Search(query)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoMatch, query)
	}
	return &matches[0], nil
}
