package fuzzy

import (
	"errors"
	"testing"
)

func TestScore_WorkedExamples(t *testing.T) {
	// The binding contract: matches near the end of a short text beat matches
	// near the start of a long one.
	tests := []struct {
		query string
		text  string
		want  int
	}{
		// positions {0,18,19,20,21}, length 22: 21+3+2+1+0
		{"pnvim", "Project/something/nvim", 27},
		// positions {0,8,9,10,11}, length 20: 19+11+10+9+8
		{"pnvim", "Project/nvim/lib/lua", 57},
	}
	for _, tt := range tests {
		got, err := Score(tt.query, tt.text, false)
		if err != nil {
			t.Fatalf("Score(%q, %q) failed: %v", tt.query, tt.text, err)
		}
		if got != tt.want {
			t.Errorf("Score(%q, %q) = %d, want %d", tt.query, tt.text, got, tt.want)
		}
	}

	a, _ := Score("pnvim", "Project/something/nvim", false)
	b, _ := Score("pnvim", "Project/nvim/lib/lua", false)
	if a >= b {
		t.Errorf("end-weighted ranking broken: %d should sort before %d", a, b)
	}
}

func TestScore_EmptyQuery(t *testing.T) {
	for _, text := range []string{"", "anything", "Project/nvim"} {
		got, err := Score("", text, false)
		if err != nil {
			t.Fatalf("Score(\"\", %q) failed: %v", text, err)
		}
		if got != 0 {
			t.Errorf("Score(\"\", %q) = %d, want 0", text, got)
		}
	}
}

func TestScore_NoAlignment(t *testing.T) {
	tests := []struct {
		name  string
		query string
		text  string
	}{
		{"no common characters", "xyz", "abc"},
		{"out of order", "ba", "ab"},
		{"query longer than text", "abcd", "abc"},
		{"empty text", "a", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Score(tt.query, tt.text, false)
			if !errors.Is(err, ErrNoAlignment) {
				t.Fatalf("Score(%q, %q) err = %v, want ErrNoAlignment", tt.query, tt.text, err)
			}
		})
	}
}

func TestScore_CaseSensitivity(t *testing.T) {
	upper, err := Score("PNVIM", "project/nvim", false)
	if err != nil {
		t.Fatalf("case-insensitive upper query failed: %v", err)
	}
	lower, err := Score("pnvim", "project/nvim", false)
	if err != nil {
		t.Fatalf("case-insensitive lower query failed: %v", err)
	}
	if upper != lower {
		t.Errorf("case-insensitive scores differ: %d vs %d", upper, lower)
	}

	if _, err := Score("PNVIM", "project/nvim", true); !errors.Is(err, ErrNoAlignment) {
		t.Errorf("case-sensitive mismatch err = %v, want ErrNoAlignment", err)
	}
	if _, err := Score("nvim", "project/nvim", true); err != nil {
		t.Errorf("case-sensitive exact-case match failed: %v", err)
	}
}

func TestScore_Deterministic(t *testing.T) {
	first, err := Score("cfg", "Projects/config/nvim", false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		got, err := Score("cfg", "Projects/config/nvim", false)
		if err != nil || got != first {
			t.Fatalf("run %d: got (%d, %v), want (%d, nil)", i, got, err, first)
		}
	}
}

func TestScore_SuffixShiftMonotonic(t *testing.T) {
	// Shifting the matched characters toward the end (length held fixed)
	// must never increase the score.
	shifted, _ := Score("abc", "xxxxxabc", false)
	spread, _ := Score("abc", "abcxxxxx", false)
	if shifted > spread {
		t.Errorf("shifted-to-end score %d > %d", shifted, spread)
	}
	mid, _ := Score("abc", "xxabcxxx", false)
	if shifted > mid || mid > spread {
		t.Errorf("monotonicity broken: %d, %d, %d", shifted, mid, spread)
	}
}

func TestScore_InvalidEncoding(t *testing.T) {
	bad := string([]byte{0xff, 0xfe})
	if _, err := Score(bad, "abc", false); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("invalid query err = %v, want ErrInvalidEncoding", err)
	}
	if _, err := Score("a", bad, false); !errors.Is(err, ErrInvalidEncoding) {
		t.Errorf("invalid text err = %v, want ErrInvalidEncoding", err)
	}
}

func TestScore_Unicode(t *testing.T) {
	// Distances count runes, not bytes: "ü" is the last of 5 runes.
	got, err := Score("ü", "münchü", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0 {
		t.Errorf("Score(ü, münchü) = %d, want 0 (last rune)", got)
	}

	got, err = Score("Ü", "münchen", false)
	if err != nil {
		t.Fatal(err)
	}
	// Rightmost ü is rune position 1 of 7.
	if got != 5 {
		t.Errorf("Score(Ü, münchen) = %d, want 5", got)
	}
}

func TestAlign_RightmostPositions(t *testing.T) {
	tests := []struct {
		query string
		text  string
		want  []int
	}{
		{"pnvim", "Project/something/nvim", []int{0, 18, 19, 20, 21}},
		{"pnvim", "Project/nvim/lib/lua", []int{0, 8, 9, 10, 11}},
		// Repeated characters: every match lands as late as possible.
		{"aa", "banana", []int{3, 5}},
		{"", "anything", []int{}},
	}
	for _, tt := range tests {
		got, err := Align(tt.query, tt.text, false)
		if err != nil {
			t.Fatalf("Align(%q, %q) failed: %v", tt.query, tt.text, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("Align(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("Align(%q, %q) = %v, want %v", tt.query, tt.text, got, tt.want)
			}
		}
	}
}

func TestAlign_StrictlyIncreasingAndMatching(t *testing.T) {
	tests := []struct {
		query string
		text  string
	}{
		{"pnvim", "Project/something/nvim"},
		{"convim", "Projects/config/nvim"},
		{"de", "gateways/delete.yaml"},
		{"aaa", "aaaa"},
	}
	for _, tt := range tests {
		positions, err := Align(tt.query, tt.text, false)
		if err != nil {
			t.Fatalf("Align(%q, %q) failed: %v", tt.query, tt.text, err)
		}
		textRunes := []rune(tt.text)
		queryRunes := []rune(tt.query)
		for i, p := range positions {
			if i > 0 && positions[i-1] >= p {
				t.Fatalf("Align(%q, %q) positions not strictly increasing: %v", tt.query, tt.text, positions)
			}
			if !runeEqual(queryRunes[i], textRunes[p], false) {
				t.Fatalf("Align(%q, %q): text[%d]=%q does not match query[%d]=%q",
					tt.query, tt.text, p, textRunes[p], i, queryRunes[i])
			}
		}
	}
}

func TestAlign_ScoreAgreement(t *testing.T) {
	query, text := "convim", "Projects/config/nvim"
	positions, err := Align(query, text, false)
	if err != nil {
		t.Fatal(err)
	}
	score, err := Score(query, text, false)
	if err != nil {
		t.Fatal(err)
	}
	last := len([]rune(text)) - 1
	sum := 0
	for _, p := range positions {
		sum += last - p
	}
	if sum != score {
		t.Errorf("alignment distances sum to %d, Score returned %d", sum, score)
	}
}

func TestLikePattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"", "%"},
		{"abc", "%a%b%c%"},
		{"a_b", "%a%\\_%b%"},
		{"50%", "%5%0%\\%%"},
		{`a\b`, `%a%\\%b%`},
		{"üx", "%ü%x%"},
	}
	for _, tt := range tests {
		if got := LikePattern(tt.query); got != tt.want {
			t.Errorf("LikePattern(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}
