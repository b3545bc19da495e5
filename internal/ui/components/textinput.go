package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label and the field's
// validation messages.
type TextInput struct {
	Model    textinput.Model
	Label    string
	MaxWidth int
	errors   []string
}

// NewTextInput creates a new styled, unfocused text input.
func NewTextInput(label, placeholder string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.SetWidth(maxWidth)
	}

	return TextInput{
		Model:    ti,
		Label:    label,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	if t.Model.Focused() {
		return textinput.Blink
	}
	return nil
}

// Update handles messages. Unfocused inputs ignore key presses.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if !t.Model.Focused() {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the label, the input and any error lines under it.
func (t TextInput) View() string {
	labelStyle := theme.Label
	if t.Model.Focused() {
		labelStyle = theme.Selected
	}

	var b strings.Builder
	if t.Label != "" {
		b.WriteString(labelStyle.Render(t.Label))
		b.WriteString("\n")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border)
	if len(t.errors) > 0 {
		box = box.BorderForeground(theme.Error)
	} else if t.Model.Focused() {
		box = box.BorderForeground(theme.Primary)
	}
	b.WriteString(box.Render(t.Model.View()))

	for _, e := range t.errors {
		b.WriteString("\n")
		b.WriteString(theme.FieldError.Render(e))
	}
	return b.String()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value and moves the cursor to the end.
func (t *TextInput) SetValue(s string) {
	t.Model.SetValue(s)
	t.Model.CursorEnd()
}

// Focus focuses the input and returns the cursor blink command.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus from the input.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// SetErrors sets the validation messages shown under the input.
func (t *TextInput) SetErrors(errs []string) {
	t.errors = errs
}

// Errors returns the validation messages currently shown.
func (t TextInput) Errors() []string {
	return t.errors
}
