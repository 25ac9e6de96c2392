// Package fuzzy scores subsequence matches for ranking candidate paths.
//
// Given a query that appears in a text as a subsequence, Score finds the
// rightmost alignment (every query character assigned to the latest text
// position the ordering constraint allows) and sums each matched character's
// distance from the end of the text. Matches packed toward the end of short
// texts score low; lower is better, so results are consumed in ascending
// score order.
package fuzzy

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrNoAlignment means the query is not a subsequence of the text under
	// the active comparison mode. Callers are expected to pre-filter
	// candidates (see LikePattern) so this only fires on a filter/rank
	// mismatch.
	ErrNoAlignment = errors.New("query is not a subsequence of text")

	// ErrInvalidEncoding means an input was not valid UTF-8.
	ErrInvalidEncoding = errors.New("input is not valid UTF-8")
)

// Score ranks text against query. The returned score is the sum, over the
// rightmost alignment, of each matched character's distance from the end of
// text (0 for the last character). An empty query scores 0 against anything.
//
// Score is pure and safe for concurrent use.
func Score(query, text string, caseSensitive bool) (int, error) {
	score, _, err := alignBack(query, text, caseSensitive, false)
	return score, err
}

// Align returns the rightmost alignment as strictly increasing rune
// positions into text, one per query character. Used for match highlighting.
func Align(query, text string, caseSensitive bool) ([]int, error) {
	_, fromEnd, err := alignBack(query, text, caseSensitive, true)
	if err != nil {
		return nil, err
	}

	// fromEnd holds distances from the end in reverse query order;
	// convert to forward rune positions.
	last := utf8.RuneCountInString(text) - 1
	positions := make([]int, len(fromEnd))
	for i, d := range fromEnd {
		positions[len(fromEnd)-1-i] = last - d
	}
	return positions, nil
}

// alignBack is the single backward scan shared by Score and Align. It walks
// both strings right to left, assigning each query rune the rightmost text
// rune before its successor's position. Distances from the end are summed as
// they are found, so no forward positions (and no rune-slice conversion) are
// needed for scoring.
func alignBack(query, text string, caseSensitive bool, keep bool) (int, []int, error) {
	if !utf8.ValidString(query) || !utf8.ValidString(text) {
		return 0, nil, ErrInvalidEncoding
	}
	if query == "" {
		return 0, nil, nil
	}

	var distances []int
	if keep {
		distances = make([]int, 0, utf8.RuneCountInString(query))
	}

	score := 0
	fromEnd := 0 // runes of text strictly after the scan cursor
	qi := len(query)
	ti := len(text)
	for qi > 0 {
		qr, qn := utf8.DecodeLastRuneInString(query[:qi])
		qi -= qn

		matched := false
		for ti > 0 {
			tr, tn := utf8.DecodeLastRuneInString(text[:ti])
			ti -= tn
			if runeEqual(qr, tr, caseSensitive) {
				score += fromEnd
				if keep {
					distances = append(distances, fromEnd)
				}
				fromEnd++
				matched = true
				break
			}
			fromEnd++
		}
		if !matched {
			return 0, nil, ErrNoAlignment
		}
	}
	return score, distances, nil
}

func runeEqual(a, b rune, caseSensitive bool) bool {
	if a == b {
		return true
	}
	if caseSensitive {
		return false
	}
	return unicode.ToLower(a) == unicode.ToLower(b)
}

// LikePattern builds the wildcard pattern the host query uses to pre-filter
// candidates: %c1%c2%...% matches any text containing the query characters in
// order. LIKE metacharacters and the escape rune itself are escaped for use
// with ESCAPE '\'.
func LikePattern(query string) string {
	var b strings.Builder
	b.Grow(2*len(query) + 1)
	b.WriteByte('%')
	for _, r := range query {
		switch r {
		case '%', '_', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
		b.WriteByte('%')
	}
	return b.String()
}
