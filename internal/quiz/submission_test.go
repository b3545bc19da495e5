package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmission(t *testing.T) {
	s := NewSubmission()

	require.Len(t, s.Questions, 1)
	require.Len(t, s.Questions[0].Answers, 1)
	assert.False(t, s.Questions[0].Answers[0].IsTrue)
}

func TestSubmission_SetTrueAnswerIsExclusive(t *testing.T) {
	s := NewSubmission()
	s.AddAnswer(0)
	s.AddAnswer(0)

	s.SetTrueAnswer(0, 0)
	s.SetTrueAnswer(0, 2)
	assert.Equal(t, []bool{false, false, true}, flags(s.Questions[0]))

	// Unchecking the checked answer leaves none selected.
	s.SetTrueAnswer(0, 2)
	assert.Equal(t, []bool{false, false, false}, flags(s.Questions[0]))

	// Out of range is a no-op.
	s.SetTrueAnswer(0, 9)
	s.SetTrueAnswer(4, 0)
	assert.Equal(t, []bool{false, false, false}, flags(s.Questions[0]))
}

func flags(q QuestionInput) []bool {
	out := make([]bool, len(q.Answers))
	for i, a := range q.Answers {
		out[i] = a.IsTrue
	}
	return out
}

func TestSubmission_AddAndRemove(t *testing.T) {
	s := NewSubmission()
	s.AddQuestion()
	s.Questions[0].Text = "first"
	s.Questions[1].Text = "second"
	s.AddAnswer(1)

	require.Len(t, s.Questions, 2)
	assert.Len(t, s.Questions[1].Answers, 2)

	s.Questions[1].Answers[0].Text = "keep"
	s.Questions[1].Answers[1].Text = "drop"
	s.RemoveAnswer(1, 1)
	assert.Equal(t, []AnswerInput{{Text: "keep"}}, s.Questions[1].Answers)

	s.RemoveQuestion(0)
	require.Len(t, s.Questions, 1)
	assert.Equal(t, "second", s.Questions[0].Text)

	s.RemoveQuestion(3)
	s.RemoveAnswer(0, 5)
	assert.Len(t, s.Questions, 1)
}

func TestSubmission_RemoveDoesNotAliasClone(t *testing.T) {
	s := twoQuestionSubmission()
	c := s.Clone()

	c.RemoveQuestion(0)

	assert.Equal(t, "Capital of France?", s.Questions[0].Text)
	assert.Len(t, s.Questions, 2)
}

func TestFromQuiz(t *testing.T) {
	s := FromQuiz(SeedQuiz())

	assert.Equal(t, "quiz title", s.Title)
	require.Len(t, s.Questions, 3)
	assert.Equal(t, int64(53), s.Questions[0].ID)
	assert.Equal(t, int64(124), s.Questions[0].Answers[2].ID)
	assert.True(t, s.Questions[0].Answers[2].IsTrue)
}
