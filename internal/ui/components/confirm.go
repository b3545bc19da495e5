package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/ui/theme"
)

// ConfirmResult is the outcome of a Confirm prompt.
type ConfirmResult int

const (
	ConfirmPending ConfirmResult = iota
	ConfirmYes
	ConfirmNo
)

// Confirm is a yes/no prompt. y and n answer directly; left/right move the
// selection and enter picks it.
type Confirm struct {
	Prompt   string
	Selected int // 0 = yes, 1 = no
	Result   ConfirmResult
}

// NewConfirm creates a prompt with "No" preselected.
func NewConfirm(prompt string) Confirm {
	return Confirm{Prompt: prompt, Selected: 1}
}

// Update handles keyboard input.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Result != ConfirmPending {
		return c, nil
	}

	switch kmsg.String() {
	case "y", "Y":
		c.Result = ConfirmYes
	case "n", "N":
		c.Result = ConfirmNo
	case "left", "h", "tab":
		c.Selected = 1 - c.Selected
	case "right", "l":
		c.Selected = 1 - c.Selected
	case "enter":
		if c.Selected == 0 {
			c.Result = ConfirmYes
		} else {
			c.Result = ConfirmNo
		}
	}

	return c, nil
}

// View renders the prompt and both choices.
func (c Confirm) View() string {
	choice := func(label string, selected bool) string {
		if selected {
			return theme.ButtonActive.Render("▸ " + label)
		}
		return lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 2).Render(label)
	}

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt)
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		choice("Yes (y)", c.Selected == 0),
		"  ",
		choice("No (n)", c.Selected == 1),
	)
	return prompt + "\n\n" + row
}
