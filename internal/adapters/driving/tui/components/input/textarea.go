package input

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/styles"
)

// MultilineField wraps a bubbles textarea for multi-line answers such
// as the commit body.
type MultilineField struct {
	textarea textarea.Model
	styles   *styles.Styles
}

// NewMultilineField creates a new multi-line field.
func NewMultilineField(placeholder string, s *styles.Styles) *MultilineField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Focus()
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.ShowLineNumbers = false

	return &MultilineField{
		textarea: ta,
		styles:   s,
	}
}

// Init initialises the field.
func (f *MultilineField) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input messages.
func (f *MultilineField) Update(msg tea.Msg) (*MultilineField, tea.Cmd) {
	var cmd tea.Cmd
	f.textarea, cmd = f.textarea.Update(msg)
	return f, cmd
}

// View renders the field.
func (f *MultilineField) View() string {
	return f.textarea.View()
}

// Value returns the current value.
func (f *MultilineField) Value() string {
	return f.textarea.Value()
}

// SetValue sets the value.
func (f *MultilineField) SetValue(value string) {
	f.textarea.SetValue(value)
}

// SetWidth sets the width of the field.
func (f *MultilineField) SetWidth(width int) {
	w := width - 4
	if w < 20 {
		w = 20
	}
	f.textarea.SetWidth(w)
}

// Reset clears the field.
func (f *MultilineField) Reset() {
	f.textarea.Reset()
}
