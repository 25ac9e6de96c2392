package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const fallbackWidth = 80

// TermWidth returns the terminal width, or a fallback when stdout is not a
// terminal (pipes, CI).
func TermWidth() int {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return fallbackWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// TruncatePath shortens a path to fit width, dropping leading components
// first. The tail of a path is what fuzzy ranking favors, so it is also
// what users need to see.
func TruncatePath(path string, width int) string {
	if width <= 0 || len([]rune(path)) <= width {
		return path
	}
	if width <= 1 {
		return "…"
	}

	runes := []rune(path)
	tail := runes[len(runes)-(width-1):]
	// Cut at a path separator when one is close by, for a cleaner ellipsis.
	if i := strings.IndexRune(string(tail), '/'); i >= 0 && i < len(tail)-1 {
		tail = tail[i:]
	}
	return "…" + string(tail)
}
