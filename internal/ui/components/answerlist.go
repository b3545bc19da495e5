package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/ui/theme"
)

// AnswerList renders a question with its lettered answers. The correct
// answer is highlighted and ticked.
type AnswerList struct {
	Question     string
	Options      []string
	CorrectIndex int
}

// NewAnswerList creates an answer list. A negative correctIndex highlights
// nothing.
func NewAnswerList(question string, options []string, correctIndex int) AnswerList {
	return AnswerList{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// View renders the answer list.
func (a AnswerList) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Question))
	b.WriteString("\n")

	for i, opt := range a.Options {
		line := fmt.Sprintf("  %s)  %s", optionLabel(i), opt)
		if i == a.CorrectIndex {
			b.WriteString(theme.Correct.Render(line + "  ✓"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// optionLabel returns A..Z, then AA, AB and so on.
func optionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return optionLabel(i/26-1) + string(rune('A'+i%26))
}
