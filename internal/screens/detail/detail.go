package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/quiz"
	"github.com/abhisek/quizapp/internal/router"
	"github.com/abhisek/quizapp/internal/screen"
	"github.com/abhisek/quizapp/internal/screens/form"
	"github.com/abhisek/quizapp/internal/screens/notfound"
	"github.com/abhisek/quizapp/internal/ui/components"
	"github.com/abhisek/quizapp/internal/ui/layout"
	"github.com/abhisek/quizapp/internal/ui/theme"
)

// DetailScreen shows one quiz with every question and its answers.
type DetailScreen struct {
	quizzes *quiz.Service
	id      int64
	quiz    quiz.Quiz
	found   bool
	scroll  int
	status  string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a DetailScreen for the quiz with the given id.
func New(quizzes *quiz.Service, id int64) *DetailScreen {
	d := &DetailScreen{quizzes: quizzes, id: id}
	d.reload()
	return d
}

func (d *DetailScreen) reload() {
	q, err := d.quizzes.Get(d.id)
	d.quiz, d.found = q, err == nil
}

// Init swaps in the not-found page when the quiz is already gone.
func (d *DetailScreen) Init() tea.Cmd {
	if d.found {
		return nil
	}
	return d.replaceWithNotFound()
}

func (d *DetailScreen) replaceWithNotFound() tea.Cmd {
	missing := notfound.New(d.id)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: missing} }
}

func (d *DetailScreen) Title() string {
	if !d.found {
		return "Quiz"
	}
	return d.quiz.Title
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "E", Description: "Edit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StatusMsg:
		d.status = msg.Text
		d.reload()
		if !d.found {
			return d, d.replaceWithNotFound()
		}
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.scroll > 0 {
				d.scroll--
			}
		case "down", "j":
			d.scroll++
		case "e":
			d.reload()
			if !d.found {
				return d, d.replaceWithNotFound()
			}
			edit := form.Edit(d.quizzes, d.quiz)
			return d, func() tea.Msg { return router.PushScreenMsg{Screen: edit} }
		}
	}
	return d, nil
}

func (d *DetailScreen) View(width, height int) string {
	if !d.found {
		return ""
	}
	cw := layout.ContentWidth(width)
	q := d.quiz

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render(q.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Created on: " + quiz.FormatDate(q.Created)))
	b.WriteString("\n")
	if d.status != "" {
		b.WriteString(theme.Status.Render(d.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	description := q.Description
	if description == "" {
		description = "No description available"
	}
	b.WriteString(theme.Body.Width(cw).Render(description))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(q.URL))
	b.WriteString("\n")

	for i, question := range q.Questions {
		options := make([]string, len(question.Answers))
		correct := -1
		for j, a := range question.Answers {
			options[j] = a.Text
			if a.IsTrue {
				correct = j
			}
		}
		heading := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("Question %d", i+1))
		list := components.NewAnswerList(question.Text, options, correct)

		b.WriteString("\n")
		b.WriteString(heading)
		b.WriteString("\n")
		b.WriteString(list.View())
		b.WriteString(theme.Correct.Render("  ✓ " + question.FeedbackTrue))
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  ✗ " + question.FeedbackFalse))
		b.WriteString("\n")
	}

	content := strings.TrimRight(b.String(), "\n")
	total := lipgloss.Height(content)
	if limit := total - height; d.scroll > limit {
		d.scroll = limit
	}
	if d.scroll < 0 {
		d.scroll = 0
	}
	content = layout.Window(content, d.scroll+height/2, height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
