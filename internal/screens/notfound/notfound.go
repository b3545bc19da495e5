package notfound

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/screen"
	"github.com/abhisek/quizapp/internal/ui/layout"
	"github.com/abhisek/quizapp/internal/ui/theme"
)

// NotFoundScreen is shown when a quiz id no longer resolves, for example
// after the quiz was deleted while a stale page still pointed at it.
type NotFoundScreen struct {
	id int64
}

var _ screen.Screen = (*NotFoundScreen)(nil)
var _ screen.KeyHintProvider = (*NotFoundScreen)(nil)

// New creates a NotFoundScreen for the given quiz id.
func New(id int64) *NotFoundScreen {
	return &NotFoundScreen{id: id}
}

func (n *NotFoundScreen) Init() tea.Cmd {
	return nil
}

func (n *NotFoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return n, nil
}

func (n *NotFoundScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (n *NotFoundScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("╌╌ 404 ╌╌")
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Quiz %d does not exist.\nIt may have been deleted.", n.id))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(heading + "\n\n" + body)
}

func (n *NotFoundScreen) Title() string {
	return "Not Found"
}
