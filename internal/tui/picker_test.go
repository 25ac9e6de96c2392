package tui

import "testing"

type testItem struct {
	value string
}

func (t testItem) FilterValue() string { return t.value }
func (t testItem) Title() string       { return t.value }
func (t testItem) Description() string { return "" }

func items(values ...string) []Item {
	out := make([]Item, len(values))
	for i, v := range values {
		out[i] = testItem{value: v}
	}
	return out
}

func TestApplyFilter_EmptyQueryKeepsAll(t *testing.T) {
	p := NewPicker(items("alpha", "beta", "gamma"))
	if len(p.filtered) != 3 {
		t.Fatalf("empty query filtered to %d items, want 3", len(p.filtered))
	}
}

func TestApplyFilter_DropsNonSubsequences(t *testing.T) {
	p := NewPicker(items("alpha", "beta"))
	p.query = "alp"
	p.applyFilter()
	if len(p.filtered) != 1 {
		t.Fatalf("filtered to %d items, want 1", len(p.filtered))
	}
	if p.filtered[0].item.Title() != "alpha" {
		t.Errorf("kept %q, want alpha", p.filtered[0].item.Title())
	}
}

func TestApplyFilter_AscendingEndWeightedOrder(t *testing.T) {
	// Same ranking contract as the SQL path: end-heavy match in short text
	// first.
	p := NewPicker(items("Project/nvim/lib/lua", "Project/something/nvim"))
	p.query = "pnvim"
	p.applyFilter()

	if len(p.filtered) != 2 {
		t.Fatalf("filtered to %d items, want 2", len(p.filtered))
	}
	if p.filtered[0].item.Title() != "Project/something/nvim" {
		t.Errorf("best match = %q, want Project/something/nvim", p.filtered[0].item.Title())
	}
	if p.filtered[0].score >= p.filtered[1].score {
		t.Errorf("scores not ascending: %d, %d", p.filtered[0].score, p.filtered[1].score)
	}
}

func TestApplyFilter_CaseSensitiveOption(t *testing.T) {
	p := NewPicker(items("project/nvim"), WithCaseSensitive(true))
	p.query = "PN"
	p.applyFilter()
	if len(p.filtered) != 0 {
		t.Errorf("case-sensitive filter kept %d items, want 0", len(p.filtered))
	}

	p = NewPicker(items("project/nvim"))
	p.query = "PN"
	p.applyFilter()
	if len(p.filtered) != 1 {
		t.Errorf("case-insensitive filter kept %d items, want 1", len(p.filtered))
	}
}

func TestApplyFilter_RecordsAlignmentForHighlight(t *testing.T) {
	p := NewPicker(items("Project/something/nvim"))
	p.query = "pnvim"
	p.applyFilter()

	if len(p.filtered) != 1 {
		t.Fatal("expected one match")
	}
	got := p.filtered[0].positions
	want := []int{0, 18, 19, 20, 21}
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions = %v, want %v", got, want)
		}
	}
}
