package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizapp/internal/quiz"
	"github.com/abhisek/quizapp/internal/router"
	"github.com/abhisek/quizapp/internal/screen"
	"github.com/abhisek/quizapp/internal/screens/notfound"
	"github.com/abhisek/quizapp/internal/ui/components"
	"github.com/abhisek/quizapp/internal/ui/layout"
	"github.com/abhisek/quizapp/internal/ui/theme"
)

// FormScreen creates a new quiz or edits an existing one. Every text field
// shares one input that follows focus; values live in the Submission.
type FormScreen struct {
	quizzes *quiz.Service
	editID  *int64

	sub    quiz.Submission
	focus  int
	editor components.TextInput

	// submitted turns on live revalidation after the first submit attempt.
	submitted bool
	errs      *quiz.ValidationErrors
	errMsg    string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates a form for a new quiz: one question with one empty answer.
func New(quizzes *quiz.Service) *FormScreen {
	f := &FormScreen{
		quizzes: quizzes,
		sub:     quiz.NewSubmission(),
	}
	f.load()
	return f
}

// Edit creates a form prefilled from q. Submitting replaces q.
func Edit(quizzes *quiz.Service, q quiz.Quiz) *FormScreen {
	id := q.ID
	f := &FormScreen{
		quizzes: quizzes,
		editID:  &id,
		sub:     quiz.FromQuiz(q),
	}
	f.load()
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.editor.Init()
}

func (f *FormScreen) Title() string {
	if f.editID != nil {
		return "Edit Quiz"
	}
	return "Create New Quiz"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Ctrl+X", Description: "Remove"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.editor, cmd = f.editor.Update(msg)
		return f, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return f, f.move(1)
	case "shift+tab", "up":
		return f, f.move(-1)
	case "ctrl+s":
		return f.submit()
	case "ctrl+x":
		return f, f.remove()
	case "enter":
		return f.activate()
	case "space":
		if f.current().kind == itemAnswerCorrect {
			return f.activate()
		}
	}

	cur := f.current()
	if !cur.isText() {
		return f, nil
	}
	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(msg)
	setText(&f.sub, cur, f.editor.Value())
	f.revalidate()
	return f, cmd
}

func (f *FormScreen) current() item {
	all := items(f.sub)
	if f.focus >= len(all) {
		f.focus = len(all) - 1
	}
	if f.focus < 0 {
		f.focus = 0
	}
	return all[f.focus]
}

// load binds the shared editor to the focused element.
func (f *FormScreen) load() tea.Cmd {
	cur := f.current()
	if !cur.isText() {
		f.editor.Blur()
		return nil
	}
	f.editor = components.NewTextInput(cur.label(), cur.label(), 0)
	f.editor.SetValue(text(&f.sub, cur))
	f.editor.SetErrors(f.fieldErrors(cur))
	return f.editor.Focus()
}

func (f *FormScreen) move(delta int) tea.Cmd {
	n := len(items(f.sub))
	f.focus = (f.focus + delta + n) % n
	return f.load()
}

func (f *FormScreen) focusOn(target item) tea.Cmd {
	for i, it := range items(f.sub) {
		if it == target {
			f.focus = i
			break
		}
	}
	return f.load()
}

func (f *FormScreen) activate() (screen.Screen, tea.Cmd) {
	cur := f.current()
	switch cur.kind {
	case itemAnswerCorrect:
		f.sub.SetTrueAnswer(cur.q, cur.a)
		f.revalidate()
		return f, nil
	case itemAddAnswer:
		f.sub.AddAnswer(cur.q)
		f.revalidate()
		return f, f.focusOn(item{kind: itemAnswerText, q: cur.q, a: len(f.sub.Questions[cur.q].Answers) - 1})
	case itemAddQuestion:
		f.sub.AddQuestion()
		f.revalidate()
		return f, f.focusOn(item{kind: itemQuestionText, q: len(f.sub.Questions) - 1})
	case itemSubmit:
		return f.submit()
	}
	return f, f.move(1)
}

// remove drops the focused answer, or the focused question when focus is
// on one of its own fields.
func (f *FormScreen) remove() tea.Cmd {
	cur := f.current()
	switch cur.kind {
	case itemAnswerText, itemAnswerCorrect:
		f.sub.RemoveAnswer(cur.q, cur.a)
	case itemQuestionText, itemFeedbackTrue, itemFeedbackFalse:
		f.sub.RemoveQuestion(cur.q)
	default:
		return nil
	}
	f.revalidate()
	return f.load()
}

func (f *FormScreen) submit() (screen.Screen, tea.Cmd) {
	f.submitted = true
	f.errMsg = ""

	saved, err := f.quizzes.Submit(context.Background(), f.sub, f.editID)
	if err != nil {
		var verrs *quiz.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			f.errs = verrs
			return f, f.focusFirstError()
		case errors.Is(err, quiz.ErrQuizNotFound) && f.editID != nil:
			missing := notfound.New(*f.editID)
			return f, func() tea.Msg { return router.ReplaceScreenMsg{Screen: missing} }
		default:
			f.errMsg = err.Error()
			return f, nil
		}
	}

	status := fmt.Sprintf("Quiz %q created", saved.Title)
	if f.editID != nil {
		status = fmt.Sprintf("Quiz %q updated", saved.Title)
	}
	return f, func() tea.Msg {
		return router.PopScreenMsg{Notify: screen.StatusMsg{Text: status}}
	}
}

// revalidate refreshes messages on every change once a submit was tried.
func (f *FormScreen) revalidate() {
	if !f.submitted {
		return
	}
	f.errs = nil
	if _, err := quiz.Validate(f.sub); err != nil {
		errors.As(err, &f.errs)
	}
	if cur := f.current(); cur.isText() {
		f.editor.SetErrors(f.fieldErrors(cur))
	}
}

func (f *FormScreen) focusFirstError() tea.Cmd {
	for i, it := range items(f.sub) {
		if len(f.fieldErrors(it)) > 0 {
			f.focus = i
			return f.load()
		}
	}
	return f.load()
}

func (f *FormScreen) fieldErrors(it item) []string {
	if f.errs == nil {
		return nil
	}
	return f.errs.For(it.path())
}

func (f *FormScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	all := items(f.sub)
	f.current()

	var blocks []string
	lines, focusLine := 0, 0
	add := func(block string, focused bool) {
		if focused {
			focusLine = lines
		}
		blocks = append(blocks, block)
		lines += lipgloss.Height(block)
	}

	heading := theme.Title.Width(cw).Render(f.Title())
	add(heading, false)
	if f.errMsg != "" {
		add(theme.FieldError.Render(f.errMsg), false)
	}

	indent := lipgloss.NewStyle().PaddingLeft(4)
	for i, it := range all {
		focused := i == f.focus
		var block string
		switch {
		case it.isText():
			block = f.renderText(it, focused, cw)
		case it.kind == itemAnswerCorrect:
			checked := f.sub.Questions[it.q].Answers[it.a].IsTrue
			block = components.Checkbox(it.label(), checked, focused) + f.renderErrors(it)
		case it.kind == itemSubmit:
			label := "Create Quiz"
			if f.editID != nil {
				label = "Update Quiz"
			}
			block = "\n" + components.NewButton(label, focused, nil).View()
		default:
			block = components.NewButton(it.label(), focused, nil).View() + f.renderErrors(it)
		}

		switch it.kind {
		case itemQuestionText:
			add(questionHeading(it.q, cw), false)
		case itemAnswerText:
			add(indent.Render(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("Answer %d", it.a+1))), false)
		}
		if it.kind == itemAnswerText || it.kind == itemAnswerCorrect || it.kind == itemAddAnswer {
			block = indent.Render(block)
		}
		add(block, focused)
	}

	content := strings.Join(blocks, "\n")
	content = layout.Window(content, focusLine, height)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func questionHeading(i, cw int) string {
	label := fmt.Sprintf("── Question %d ", i+1)
	rest := cw - lipgloss.Width(label)
	if rest < 0 {
		rest = 0
	}
	return "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(label+strings.Repeat("─", rest))
}

func (f *FormScreen) renderText(it item, focused bool, cw int) string {
	if focused {
		f.editor.Model.SetWidth(cw - 4)
		return f.editor.View()
	}

	labelStyle := theme.Label
	value := text(&f.sub, it)
	valueLine := lipgloss.NewStyle().Foreground(theme.Text).Render(value)
	if value == "" {
		valueLine = theme.Hint.Render(it.label())
	}
	underline := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border)
	if len(f.fieldErrors(it)) > 0 {
		underline = underline.BorderForeground(theme.Error)
	}
	return labelStyle.Render(it.label()) + "\n" + underline.Render(valueLine) + f.renderErrors(it)
}

func (f *FormScreen) renderErrors(it item) string {
	var b strings.Builder
	for _, e := range f.fieldErrors(it) {
		b.WriteString("\n")
		b.WriteString(theme.FieldError.Render(e))
	}
	return b.String()
}
