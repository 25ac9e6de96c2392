package ui

import (
	"strings"
	"testing"
)

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path  string
		width int
	}{
		{"/home/u/Projects/nvim", 80},
		{"/home/u/Projects/something/very/deep/nvim", 20},
		{"/a/b", 3},
		{"/long/path", 1},
	}
	for _, tt := range tests {
		got := TruncatePath(tt.path, tt.width)
		if n := len([]rune(got)); n > tt.width && tt.width > 0 {
			t.Errorf("TruncatePath(%q, %d) = %q (%d runes), exceeds width", tt.path, tt.width, got, n)
		}
	}
}

func TestTruncatePath_KeepsTail(t *testing.T) {
	got := TruncatePath("/home/u/Projects/something/nvim", 16)
	if !strings.HasSuffix(got, "nvim") {
		t.Errorf("TruncatePath should keep the path tail, got %q", got)
	}
	if !strings.HasPrefix(got, "…") {
		t.Errorf("truncated path should start with ellipsis, got %q", got)
	}
}

func TestTruncatePath_NoChangeWhenShort(t *testing.T) {
	if got := TruncatePath("/a/b", 80); got != "/a/b" {
		t.Errorf("short path altered: %q", got)
	}
}
