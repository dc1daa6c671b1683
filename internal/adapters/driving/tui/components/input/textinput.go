// Package input provides text input components for the TUI.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nisar1406/commitmoji/internal/adapters/driving/tui/styles"
)

// TextField wraps a bubbles textinput for single-line answers. An
// optional character limit is enforced while typing and shown as a
// counter next to the field.
type TextField struct {
	textinput textinput.Model
	styles    *styles.Styles
	limit     int
	width     int
}

// NewTextField creates a new text field. limit <= 0 means unlimited.
func NewTextField(placeholder string, limit int, s *styles.Styles) *TextField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if limit > 0 {
		ti.CharLimit = limit
	}
	ti.Width = 50

	return &TextField{
		textinput: ti,
		styles:    s,
		limit:     limit,
		width:     50,
	}
}

// Init initialises the text field.
func (f *TextField) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *TextField) Update(msg tea.Msg) (*TextField, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the text field with its counter.
func (f *TextField) View() string {
	field := f.styles.InputField.Render(f.textinput.View())
	if f.limit <= 0 {
		return field
	}

	counter := f.styles.Muted.Render(fmt.Sprintf("%d/%d", len([]rune(f.Value())), f.limit))
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, field, " ", counter)
}

// Value returns the current input value.
func (f *TextField) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *TextField) SetValue(value string) {
	f.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (f *TextField) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *TextField) Blur() {
	f.textinput.Blur()
}

// SetWidth sets the width of the field.
func (f *TextField) SetWidth(width int) {
	f.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Limit returns the character limit, 0 when unlimited.
func (f *TextField) Limit() int {
	return f.limit
}

// Reset clears the input.
func (f *TextField) Reset() {
	f.textinput.Reset()
}
