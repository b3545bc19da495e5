package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/quiz"
	"github.com/abhisek/quizapp/internal/router"
	"github.com/abhisek/quizapp/internal/screen"
	"github.com/abhisek/quizapp/internal/screens/detail"
	"github.com/abhisek/quizapp/internal/screens/form"
	"github.com/abhisek/quizapp/internal/ui/components"
	"github.com/abhisek/quizapp/internal/ui/layout"
	"github.com/abhisek/quizapp/internal/ui/theme"
)

const noDescription = "No description available"

// HomeScreen lists every quiz as a card. The list is read from the service
// on every render, so it always reflects the latest repository state.
type HomeScreen struct {
	quizzes  *quiz.Service
	selected int
	confirm  *components.Confirm
	status   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(quizzes *quiz.Service) *HomeScreen {
	return &HomeScreen{quizzes: quizzes}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Quizzes"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.confirm != nil {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "View"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete"},
		{Key: "N", Description: "New"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StatusMsg:
		h.status = msg.Text
		h.clamp(len(h.quizzes.List()))
		return h, nil

	case tea.KeyMsg:
		if h.confirm != nil {
			return h.handleConfirm(msg)
		}
		return h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	list := h.quizzes.List()
	h.clamp(len(list))

	switch msg.String() {
	case "up", "k":
		if h.selected > 0 {
			h.selected--
		}
	case "down", "j":
		if h.selected < len(list)-1 {
			h.selected++
		}
	case "n":
		return h, push(form.New(h.quizzes))
	case "enter":
		if len(list) > 0 {
			return h, push(detail.New(h.quizzes, list[h.selected].ID))
		}
	case "e":
		if len(list) > 0 {
			return h, push(form.Edit(h.quizzes, list[h.selected]))
		}
	case "d":
		if len(list) > 0 {
			c := components.NewConfirm(fmt.Sprintf("Delete %q?", list[h.selected].Title))
			h.confirm = &c
		}
	}
	return h, nil
}

func (h *HomeScreen) handleConfirm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	c, _ := h.confirm.Update(msg)
	switch c.Result {
	case components.ConfirmPending:
		h.confirm = &c
		return h, nil
	case components.ConfirmYes:
		list := h.quizzes.List()
		if h.selected < len(list) {
			target := list[h.selected]
			if h.quizzes.Delete(target.ID) {
				h.status = fmt.Sprintf("Quiz %q deleted", target.Title)
			}
		}
	}
	h.confirm = nil
	h.clamp(len(h.quizzes.List()))
	return h, nil
}

func (h *HomeScreen) clamp(n int) {
	if h.selected >= n {
		h.selected = n - 1
	}
	if h.selected < 0 {
		h.selected = 0
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	list := h.quizzes.List()
	h.clamp(len(list))

	if h.confirm != nil {
		return components.Panel(h.confirm.View(), width, height)
	}

	var blocks []string
	blocks = append(blocks, theme.Title.Width(cw).Render("Quizzes"))
	if h.status != "" {
		blocks = append(blocks, theme.Status.Render(h.status))
	}

	if len(list) == 0 {
		blocks = append(blocks, "", theme.Hint.Render("No quizzes yet. Press n to create one."))
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(blocks, "\n"))
	}

	lines := 0
	for _, b := range blocks {
		lines += lipgloss.Height(b)
	}
	focusLine := 0
	for i, q := range list {
		description := q.Description
		if description == "" {
			description = noDescription
		}
		card := components.QuizCard(q.Title, quiz.FormatDate(q.Created), description, i == h.selected, cw)
		if i == h.selected {
			focusLine = lines + lipgloss.Height(card)/2
		}
		blocks = append(blocks, card)
		lines += lipgloss.Height(card)
	}

	content := layout.Window(strings.Join(blocks, "\n"), focusLine, height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
