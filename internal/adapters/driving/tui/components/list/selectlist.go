// Package list provides list display components for the TUI.
package list

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/styles"
	"github.com/nisar1406/commitmoji/internal/core/domain"
)

// Ranker orders options by similarity to a query, dropping non-matches.
type Ranker func(query string, opts []domain.Option) []domain.Option

// SelectList displays options in a navigable list. With a Ranker set
// the list is searchable: typed characters filter and re-rank the
// options; without one, typed characters are ignored.
type SelectList struct {
	options  []domain.Option
	visible  []domain.Option
	filter   textinput.Model
	rank     Ranker
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSelectList creates a new select list. rank may be nil for a fixed,
// non-searchable list.
func NewSelectList(opts []domain.Option, rank Ranker, s *styles.Styles) *SelectList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = "/ "
	ti.Focus()

	return &SelectList{
		options:  opts,
		visible:  opts,
		filter:   ti,
		rank:     rank,
		selected: 0,
		styles:   s,
		width:    80,
		height:   12,
	}
}

// Init initialises the select list.
func (l *SelectList) Init() tea.Cmd {
	if l.rank != nil {
		return textinput.Blink
	}
	return nil
}

// Update handles navigation and filter input.
func (l *SelectList) Update(msg tea.Msg) (*SelectList, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	//nolint:exhaustive // handling only relevant key types
	switch keyMsg.Type {
	case tea.KeyUp:
		l.MoveUp()
		return l, nil
	case tea.KeyDown:
		l.MoveDown()
		return l, nil
	}

	if l.rank == nil {
		switch keyMsg.String() {
		case "k":
			l.MoveUp()
		case "j":
			l.MoveDown()
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.filter, cmd = l.filter.Update(msg)
	l.visible = l.rank(l.filter.Value(), l.options)
	l.selected = 0
	return l, cmd
}

// View renders the list with the filter line on top when searchable.
func (l *SelectList) View() string {
	lines := make([]string, 0, len(l.visible)+2)

	if l.rank != nil {
		lines = append(lines, l.filter.View())
	}

	if len(l.visible) == 0 {
		lines = append(lines, l.styles.Muted.Render("No matches"))
		return strings.Join(lines, "\n")
	}

	visibleCount := l.height - 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if l.selected >= visibleCount {
		start = l.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(l.visible) {
		end = len(l.visible)
	}

	for i := start; i < end; i++ {
		lines = append(lines, l.renderOption(i))
	}

	return strings.Join(lines, "\n")
}

// renderOption formats a single option line.
func (l *SelectList) renderOption(index int) string {
	label := l.visible[index].Label

	maxLen := l.width - 4
	if maxLen < 10 {
		maxLen = 10
	}
	if len([]rune(label)) > maxLen {
		label = string([]rune(label)[:maxLen-1]) + "…"
	}

	if index == l.selected {
		return l.styles.Selected.Render("> " + label)
	}
	return l.styles.Normal.Render("  " + label)
}

// MoveUp moves the selection up.
func (l *SelectList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
}

// MoveDown moves the selection down.
func (l *SelectList) MoveDown() {
	if l.selected < len(l.visible)-1 {
		l.selected++
	}
}

// Selected returns the currently highlighted option.
func (l *SelectList) Selected() (domain.Option, bool) {
	if len(l.visible) == 0 {
		return domain.Option{}, false
	}
	return l.visible[l.selected], true
}

// SelectedIndex returns the index of the highlighted option within the
// visible set.
func (l *SelectList) SelectedIndex() int {
	return l.selected
}

// Filter returns the current filter text.
func (l *SelectList) Filter() string {
	return l.filter.Value()
}

// SetSize sets the rendering dimensions.
func (l *SelectList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Reset clears the filter and selection.
func (l *SelectList) Reset() {
	l.filter.Reset()
	l.visible = l.options
	l.selected = 0
}
