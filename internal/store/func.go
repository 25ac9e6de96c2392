package store

import (
	"database/sql/driver"
	"fmt"
	"sync"
	"sync/atomic"

	"modernc.org/sqlite"

	"wayfind/internal/fuzzy"
)

// caseSensitive is the host-owned comparison mode consulted by fuzzy_score.
// It mirrors PRAGMA case_sensitive_like (set in Open) so filter and rank
// always agree. Reads are atomic: queries may run on multiple goroutines.
var caseSensitive atomic.Bool

var registerOnce sync.Once

// RegisterScoreFunc registers the fuzzy_score(query, text) scalar with the
// sqlite driver. Registration is process-wide and happens once; Open calls
// this, so it only needs calling directly when building a connection by hand
// (tests do).
//
// fuzzy_score is deterministic for a fixed comparison mode: it returns the
// end-weighted subsequence score of query inside text, the value the host
// query sorts ascending in ORDER BY. A query that is not a subsequence of
// text makes the enclosing SQL statement fail rather than rank on a bogus
// number, which surfaces pre-filter/ranking mismatches immediately.
func RegisterScoreFunc() {
	registerOnce.Do(func() {
		sqlite.MustRegisterDeterministicScalarFunction("fuzzy_score", 2, scoreFunc)
	})
}

// SetCaseSensitive sets the comparison mode used by fuzzy_score.
func SetCaseSensitive(on bool) {
	caseSensitive.Store(on)
}

func scoreFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	query, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("fuzzy_score: query argument must be text, got %T", args[0])
	}
	text, ok := args[1].(string)
	if !ok {
		return nil, fmt.Errorf("fuzzy_score: text argument must be text, got %T", args[1])
	}

	score, err := fuzzy.Score(query, text, caseSensitive.Load())
	if err != nil {
		return nil, fmt.Errorf("fuzzy_score(%q, %q): %w", query, text, err)
	}
	return int64(score), nil
}
