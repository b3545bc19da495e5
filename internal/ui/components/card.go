package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/ui/theme"
)

// Panel wraps content in a double-border frame, centered horizontally and
// vertically within the given dimensions.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// QuizCard renders one quiz summary: title, creation line and description.
// The selected card gets the primary border.
func QuizCard(title, created, description string, selected bool, cw int) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if selected {
		titleStyle = titleStyle.Foreground(theme.Primary)
	}

	lines := []string{
		titleStyle.Render(title),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Created on: " + created),
		lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(description),
	}

	style := theme.Card
	if selected {
		style = theme.SelectedCard
	}
	return style.Width(cw).Render(strings.Join(lines, "\n"))
}
