// Package tui holds the interactive picker. Filtering and ordering use the
// same end-weighted fuzzy scorer as the SQL search path, so the picker and
// `wayfind search` always agree on ranking.
package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"wayfind/internal/fuzzy"
	"wayfind/internal/ui"
)

// Item is the interface that list items must implement for the picker.
type Item interface {
	// FilterValue returns the string matched and scored against the query.
	FilterValue() string
	// Title returns the main display text.
	Title() string
	// Description returns optional secondary text (can be empty).
	Description() string
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithTitle sets the heading displayed above the picker.
func WithTitle(title string) PickerOption {
	return func(p *Picker) { p.title = title }
}

// WithHeight sets the maximum visible items (0 = auto).
func WithHeight(h int) PickerOption {
	return func(p *Picker) { p.height = h }
}

// WithCaseSensitive sets the comparison mode for filtering and ranking.
func WithCaseSensitive(on bool) PickerOption {
	return func(p *Picker) { p.caseSensitive = on }
}

// Picker is a fuzzy-search list selector built on Bubbletea. Matches are
// ordered ascending by score: the candidate whose matched characters sit
// closest to the end of the shortest text comes first.
type Picker struct {
	title         string
	height        int
	caseSensitive bool

	items    []Item
	filtered []match
	query    string
	cursor   int
	offset   int // viewport scroll offset
	chosen   Item
	canceled bool

	termWidth  int
	termHeight int
}

type match struct {
	item      Item
	score     int
	positions []int // matched rune positions, for highlighting
}

// NewPicker creates a Picker with the given items and options.
func NewPicker(items []Item, opts ...PickerOption) *Picker {
	p := &Picker{
		height:     10,
		items:      items,
		termWidth:  80,
		termHeight: 24,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.applyFilter()
	return p
}

// Run shows a picker and returns the selected item. Returns nil and no error
// if the user canceled.
func Run(items []Item, opts ...PickerOption) (Item, error) {
	p := NewPicker(items, opts...)
	prog := tea.NewProgram(p, tea.WithAltScreen())
	m, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}
	result := m.(*Picker)
	if result.canceled {
		return nil, nil
	}
	return result.chosen, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// --- Bubbletea model implementation ---

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.termWidth = msg.Width
		p.termHeight = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			p.canceled = true
			return p, tea.Quit

		case "enter":
			if len(p.filtered) > 0 {
				p.chosen = p.filtered[p.cursor].item
			}
			return p, tea.Quit

		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
				if p.cursor < p.offset {
					p.offset = p.cursor
				}
			}
			return p, nil

		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
				vis := p.visibleHeight()
				if p.cursor >= p.offset+vis {
					p.offset = p.cursor - vis + 1
				}
			}
			return p, nil

		case "backspace":
			if len(p.query) > 0 {
				p.query = p.query[:len(p.query)-1]
				p.applyFilter()
			}
			return p, nil

		default:
			if len(msg.String()) == 1 {
				p.query += msg.String()
				p.applyFilter()
			}
			return p, nil
		}
	}
	return p, nil
}

func (p *Picker) View() string {
	var b strings.Builder

	if p.title != "" {
		b.WriteString("  " + ui.Title.Render(p.title) + "\n\n")
	}

	prompt := lipgloss.NewStyle().Foreground(ui.Teal).Bold(true).Render("> ")
	b.WriteString("  " + prompt + p.query + cursorGlyph() + "\n\n")

	vis := p.visibleHeight()
	end := p.offset + vis
	if end > len(p.filtered) {
		end = len(p.filtered)
	}

	if len(p.filtered) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matches") + "\n")
	} else {
		for i := p.offset; i < end; i++ {
			b.WriteString(p.renderMatch(p.filtered[i], i == p.cursor) + "\n")
		}
	}

	b.WriteString("\n")
	status := ui.Muted.Render(fmt.Sprintf("  %d/%d", len(p.filtered), len(p.items)))
	help := ui.Muted.Render(" · ↑↓ navigate · enter select · esc cancel")
	b.WriteString(status + help + "\n")

	return b.String()
}

// --- internal helpers ---

func (p *Picker) visibleHeight() int {
	h := p.height
	if h <= 0 || h > p.termHeight-6 {
		h = p.termHeight - 6
	}
	if h < 3 {
		h = 3
	}
	return h
}

// applyFilter recomputes the match list for the current query. Candidates
// whose filter value does not contain the query as a subsequence drop out;
// the rest sort ascending by score, best first.
func (p *Picker) applyFilter() {
	p.filtered = nil
	if p.query == "" {
		for _, item := range p.items {
			p.filtered = append(p.filtered, match{item: item})
		}
	} else {
		for _, item := range p.items {
			// Non-subsequences drop out; malformed candidate text is
			// never ranked either.
			sc, err := fuzzy.Score(p.query, item.FilterValue(), p.caseSensitive)
			if err != nil {
				continue
			}
			positions, _ := fuzzy.Align(p.query, item.FilterValue(), p.caseSensitive)
			p.filtered = append(p.filtered, match{item: item, score: sc, positions: positions})
		}
		sortMatches(p.filtered)
	}
	p.cursor = 0
	p.offset = 0
}

func (p *Picker) renderMatch(m match, selected bool) string {
	pointer := "  "
	titleStyle := lipgloss.NewStyle()
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		titleStyle = lipgloss.NewStyle().Foreground(ui.Teal).Bold(true)
	}

	title := titleStyle.Render(m.item.Title())
	desc := p.renderDescription(m)
	if desc != "" {
		desc = "  " + desc
	}

	return "  " + pointer + title + desc
}

// renderDescription highlights the matched runes of the filter value when it
// is what the description shows; otherwise it renders the description muted.
func (p *Picker) renderDescription(m match) string {
	desc := m.item.Description()
	if desc == "" {
		return ""
	}
	value := m.item.FilterValue()
	if len(m.positions) == 0 || !strings.HasPrefix(desc, value) {
		return ui.Muted.Render(desc)
	}

	highlight := lipgloss.NewStyle().Foreground(ui.Sand).Bold(true)
	matched := make(map[int]bool, len(m.positions))
	for _, pos := range m.positions {
		matched[pos] = true
	}

	var b strings.Builder
	for i, r := range []rune(value) {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(ui.Muted.Render(string(r)))
		}
	}
	b.WriteString(ui.Muted.Render(strings.TrimPrefix(desc, value)))
	return b.String()
}

func cursorGlyph() string {
	return lipgloss.NewStyle().Foreground(ui.Teal).Render("▎")
}

// sortMatches sorts ascending by score (ties by shorter filter value, then
// title) using insertion sort, which is stable and fine for small N.
func sortMatches(items []match) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && lessMatch(key, items[j]) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}

func lessMatch(a, b match) bool {
	if a.score != b.score {
		return a.score < b.score
	}
	av, bv := a.item.FilterValue(), b.item.FilterValue()
	if len(av) != len(bv) {
		return len(av) < len(bv)
	}
	return a.item.Title() < b.item.Title()
}
