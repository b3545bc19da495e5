package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizapp/internal/quiz"
	"github.com/abhisek/quizapp/internal/router"
	"github.com/abhisek/quizapp/internal/screen"
	"github.com/abhisek/quizapp/internal/screens/detail"
	"github.com/abhisek/quizapp/internal/screens/form"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newService(extra ...quiz.Quiz) *quiz.Service {
	initial := append([]quiz.Quiz{quiz.SeedQuiz()}, extra...)
	ids := quiz.NewIDGenerator(1000)
	return quiz.NewService(quiz.NewRepository(initial...), quiz.NewReconciler(ids, quiz.MatchByPosition))
}

func second() quiz.Quiz {
	q := quiz.SeedQuiz()
	q.ID = 30
	q.Title = "second quiz"
	q.Description = ""
	return q
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg.Screen
}

func TestHomeView_ListsCards(t *testing.T) {
	h := New(newService(second()))

	view := h.View(100, 40)

	assert.Contains(t, view, "quiz title")
	assert.Contains(t, view, "Created on: 09 Sep 2020")
	assert.Contains(t, view, "Description")
	assert.Contains(t, view, "No description available")
}

func TestHomeView_Empty(t *testing.T) {
	svc := newService()
	svc.Delete(quiz.SeedQuizID)
	h := New(svc)

	assert.Contains(t, h.View(100, 40), "No quizzes yet")

	// Keys that need a selected quiz do nothing.
	for _, r := range []rune{'e', 'd'} {
		_, cmd := h.Update(keyPress(r))
		assert.Nil(t, cmd)
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
}

func TestHome_Navigation(t *testing.T) {
	h := New(newService(second()))

	h.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, h.selected)
	h.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, h.selected, "selection stops at the last card")
	h.Update(keyPress('k'))
	assert.Equal(t, 0, h.selected)
}

func TestHome_EnterOpensDetail(t *testing.T) {
	h := New(newService(second()))
	h.Update(specialKey(tea.KeyDown))

	_, cmd := h.Update(specialKey(tea.KeyEnter))

	s := pushed(t, cmd)
	assert.IsType(t, &detail.DetailScreen{}, s)
	assert.Equal(t, "second quiz", s.Title())
}

func TestHome_NewAndEditOpenForm(t *testing.T) {
	h := New(newService())

	_, cmd := h.Update(keyPress('n'))
	s := pushed(t, cmd)
	assert.IsType(t, &form.FormScreen{}, s)
	assert.Equal(t, "Create New Quiz", s.Title())

	_, cmd = h.Update(keyPress('e'))
	s = pushed(t, cmd)
	assert.Equal(t, "Edit Quiz", s.Title())
}

func TestHome_DeleteConfirmed(t *testing.T) {
	svc := newService(second())
	h := New(svc)
	h.Update(specialKey(tea.KeyDown))

	h.Update(keyPress('d'))
	require.NotNil(t, h.confirm)
	assert.Contains(t, h.View(100, 40), `Delete "second quiz"?`)
	assert.Equal(t, "Y", h.KeyHints()[0].Key)

	h.Update(keyPress('y'))

	assert.Nil(t, h.confirm)
	require.Len(t, svc.List(), 1)
	assert.Equal(t, quiz.SeedQuizID, svc.List()[0].ID)
	assert.Equal(t, 0, h.selected, "selection moves back onto a remaining card")
	assert.Contains(t, h.View(100, 40), `Quiz "second quiz" deleted`)
}

func TestHome_DeleteCancelled(t *testing.T) {
	svc := newService()
	h := New(svc)

	h.Update(keyPress('d'))
	h.Update(keyPress('n'))

	assert.Nil(t, h.confirm)
	assert.Len(t, svc.List(), 1)
}

func TestHome_StatusMsg(t *testing.T) {
	h := New(newService())

	h.Update(screen.StatusMsg{Text: `Quiz "Geography Basics" created`})

	assert.True(t, strings.Contains(h.View(100, 40), "Geography Basics"))
}
