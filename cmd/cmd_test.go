package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestXDG points all XDG dirs at a temp directory so commands run
// against an isolated config and database.
func setupTestXDG(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	return tmpDir
}

// captureStdout runs fn and returns what it printed.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	runErr := fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), runErr
}

func TestAddListJump(t *testing.T) {
	setupTestXDG(t)

	root := t.TempDir()
	near := filepath.Join(root, "Project", "something", "nvim")
	far := filepath.Join(root, "Project", "nvim", "lib", "lua")
	for _, d := range []string{near, far} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
		if _, err := captureStdout(t, func() error { return runAdd(nil, []string{d}) }); err != nil {
			t.Fatalf("add %q failed: %v", d, err)
		}
	}

	out, err := captureStdout(t, func() error { return runList(nil, nil) })
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "nvim") {
		t.Errorf("list output missing entries: %q", out)
	}

	out, err = captureStdout(t, func() error { return runJump(nil, []string{"pnvim"}) })
	if err != nil {
		t.Fatalf("jump failed: %v", err)
	}
	// End-weighted ranking: .../something/nvim beats .../nvim/lib/lua.
	if strings.TrimSpace(out) != near {
		t.Errorf("jump printed %q, want %q", strings.TrimSpace(out), near)
	}
}

func TestJump_NoMatch(t *testing.T) {
	setupTestXDG(t)

	d := t.TempDir()
	if _, err := captureStdout(t, func() error { return runAdd(nil, []string{d}) }); err != nil {
		t.Fatal(err)
	}

	if _, err := captureStdout(t, func() error { return runJump(nil, []string{"zzzzzz"}) }); err == nil {
		t.Error("jump with no match should fail")
	}
}

func TestSearch_ScoresFlag(t *testing.T) {
	setupTestXDG(t)

	d := filepath.Join(t.TempDir(), "alpha")
	if err := os.MkdirAll(d, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := captureStdout(t, func() error { return runAdd(nil, []string{d}) }); err != nil {
		t.Fatal(err)
	}

	searchScores = true
	defer func() { searchScores = false }()
	out, err := captureStdout(t, func() error { return runSearch(nil, []string{"alp"}) })
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "alpha") {
		t.Errorf("search output missing match: %q", out)
	}
}

func TestConfigSetGet(t *testing.T) {
	setupTestXDG(t)

	if _, err := captureStdout(t, func() error {
		return runConfigSet(nil, []string{"search.case_sensitive", "true"})
	}); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	out, err := captureStdout(t, func() error {
		return runConfigGet(nil, []string{"search.case_sensitive"})
	})
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Errorf("config get = %q, want true", strings.TrimSpace(out))
	}

	if _, err := captureStdout(t, func() error {
		return runConfigSet(nil, []string{"bogus.key", "1"})
	}); err == nil {
		t.Error("setting an unknown key should fail")
	}
}

func TestInitEmitsShellFunction(t *testing.T) {
	out, err := captureStdout(t, func() error { return runInit(nil, []string{"zsh"}) })
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "wf()") || !strings.Contains(out, "wayfind jump") {
		t.Errorf("init output missing wf function: %q", out)
	}

	if _, err := captureStdout(t, func() error { return runInit(nil, []string{"tcsh"}) }); err == nil {
		t.Error("unknown shell should fail")
	}
}

func TestCaseModeFlag(t *testing.T) {
	var m caseMode = caseAuto
	if err := m.Set("sensitive"); err != nil {
		t.Fatalf("Set(sensitive) failed: %v", err)
	}
	if m != caseSensitive {
		t.Errorf("mode = %q, want sensitive", m)
	}
	if err := m.Set("loud"); err == nil {
		t.Error("invalid mode should fail")
	}
}
