package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock returns a clock that advances one minute per call.
func testClock(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(time.Minute)
		return t
	}
}

func newTestReconciler(match MatchStrategy) *Reconciler {
	r := NewReconciler(NewIDGenerator(1000), match)
	r.SetClock(testClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	return r
}

func mustValidate(t *testing.T, s Submission) Validated {
	t.Helper()
	v, err := Validate(s)
	require.NoError(t, err)
	return v
}

func twoQuestionSubmission() Submission {
	s := validSubmission()
	s.Questions = append(s.Questions, QuestionInput{
		Text:          "Capital of Spain?",
		FeedbackTrue:  "Yes!",
		FeedbackFalse: "No.",
		Answers: []AnswerInput{
			{Text: "Barcelona"},
			{Text: "Madrid", IsTrue: true},
		},
	})
	return s
}

func allIDs(q Quiz) []int64 {
	ids := []int64{q.ID}
	for _, question := range q.Questions {
		ids = append(ids, question.ID)
		for _, a := range question.Answers {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func TestReconcile_CreateAssignsFreshIDs(t *testing.T) {
	r := newTestReconciler(MatchByPosition)

	q := r.Reconcile(mustValidate(t, twoQuestionSubmission()), nil)

	ids := allIDs(q)
	require.Len(t, ids, 7)
	seen := make(map[int64]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.Greater(t, id, int64(1000))
		seen[id] = true
	}

	for _, question := range q.Questions {
		trueAnswer, ok := question.TrueAnswer()
		require.True(t, ok)
		require.NotNil(t, question.AnswerID)
		assert.Equal(t, trueAnswer.ID, *question.AnswerID)
	}
	assert.Equal(t, "Madrid", q.Questions[1].Answers[1].Text)
	assert.Equal(t, q.Created, q.Modified)
	assert.Nil(t, q.Score)
}

func TestReconcile_CreateIDsAreDistinctFromExistingRecords(t *testing.T) {
	r := newTestReconciler(MatchByPosition)

	first := r.Reconcile(mustValidate(t, twoQuestionSubmission()), nil)
	second := r.Reconcile(mustValidate(t, twoQuestionSubmission()), nil)

	seen := make(map[int64]bool)
	for _, id := range append(allIDs(first), allIDs(second)...) {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}

func existingQuiz() Quiz {
	created := time.Date(2020, 9, 9, 9, 26, 39, 0, time.UTC)
	return Quiz{
		ID:          29,
		Title:       "Geography Basics",
		Description: "A short quiz about world capitals and geography.",
		URL:         "https://youtu.be/dQw4w9WgXcQ",
		Created:     created,
		Modified:    created,
		Questions: []Question{
			{
				ID: 53, Text: "Q1", FeedbackTrue: "yes", FeedbackFalse: "no",
				Answers: []Answer{{ID: 122, Text: "a", IsTrue: true}, {ID: 123, Text: "b"}},
			},
			{
				ID: 54, Text: "Q2", FeedbackTrue: "yes", FeedbackFalse: "no",
				Answers: []Answer{{ID: 124, Text: "c"}, {ID: 125, Text: "d", IsTrue: true}},
			},
		},
	}
}

func TestReconcile_EditPreservesPositionalIdentity(t *testing.T) {
	r := newTestReconciler(MatchByPosition)
	prev := existingQuiz()

	s := FromQuiz(prev)
	s.Questions[0].Text = "Q1 changed"
	s.Questions[1].Text = "Q2 changed"
	s.Questions = append(s.Questions, QuestionInput{
		Text: "Q3", FeedbackTrue: "yes", FeedbackFalse: "no",
		Answers: []AnswerInput{{Text: "e", IsTrue: true}, {Text: "f"}},
	})

	got := r.Reconcile(mustValidate(t, s), &prev)

	assert.Equal(t, prev.ID, got.ID)
	assert.Equal(t, prev.Created, got.Created)
	assert.True(t, got.Modified.After(prev.Modified))
	require.Len(t, got.Questions, 3)
	assert.Equal(t, int64(53), got.Questions[0].ID)
	assert.Equal(t, int64(54), got.Questions[1].ID)
	assert.Equal(t, "Q1 changed", got.Questions[0].Text)
	assert.NotContains(t, []int64{53, 54, 122, 123, 124, 125}, got.Questions[2].ID)
	assert.Equal(t, []int64{122, 123}, []int64{got.Questions[0].Answers[0].ID, got.Questions[0].Answers[1].ID})
}

func TestReconcile_PositionalEditShiftsSiblingsOnRemoval(t *testing.T) {
	r := newTestReconciler(MatchByPosition)
	prev := existingQuiz()

	s := FromQuiz(prev)
	s.Questions = s.Questions[1:]

	got := r.Reconcile(mustValidate(t, s), &prev)

	require.Len(t, got.Questions, 1)
	// The former second question now occupies slot 0 and takes its ids.
	assert.Equal(t, "Q2", got.Questions[0].Text)
	assert.Equal(t, int64(53), got.Questions[0].ID)
	assert.Equal(t, int64(122), got.Questions[0].Answers[0].ID)
	assert.Equal(t, int64(123), got.Questions[0].Answers[1].ID)
	require.NotNil(t, got.Questions[0].AnswerID)
	assert.Equal(t, int64(123), *got.Questions[0].AnswerID)
}

func TestReconcile_EditMintsIDsForAddedAnswers(t *testing.T) {
	r := newTestReconciler(MatchByPosition)
	prev := existingQuiz()

	s := FromQuiz(prev)
	s.Questions[0].Answers = append(s.Questions[0].Answers, AnswerInput{Text: "new"})

	got := r.Reconcile(mustValidate(t, s), &prev)

	answers := got.Questions[0].Answers
	require.Len(t, answers, 3)
	assert.Equal(t, int64(122), answers[0].ID)
	assert.Equal(t, int64(123), answers[1].ID)
	assert.Greater(t, answers[2].ID, int64(1000))
}

func TestReconcile_EditRecomputesAnswerID(t *testing.T) {
	r := newTestReconciler(MatchByPosition)
	prev := existingQuiz()

	s := FromQuiz(prev)
	s.SetTrueAnswer(0, 1)

	got := r.Reconcile(mustValidate(t, s), &prev)

	require.NotNil(t, got.Questions[0].AnswerID)
	assert.Equal(t, int64(123), *got.Questions[0].AnswerID)
	assert.False(t, got.Questions[0].Answers[0].IsTrue)
}

func TestReconcile_EditCarriesScore(t *testing.T) {
	r := newTestReconciler(MatchByPosition)
	prev := existingQuiz()
	score := 0.75
	prev.Score = &score

	got := r.Reconcile(mustValidate(t, FromQuiz(prev)), &prev)

	require.NotNil(t, got.Score)
	assert.Equal(t, 0.75, *got.Score)
}

func TestReconcile_MatchByIDSurvivesReordering(t *testing.T) {
	r := newTestReconciler(MatchByID)
	prev := existingQuiz()

	s := FromQuiz(prev)
	s.Questions[0], s.Questions[1] = s.Questions[1], s.Questions[0]
	s.Questions[0].Answers[0], s.Questions[0].Answers[1] = s.Questions[0].Answers[1], s.Questions[0].Answers[0]

	got := r.Reconcile(mustValidate(t, s), &prev)

	assert.Equal(t, int64(54), got.Questions[0].ID)
	assert.Equal(t, int64(53), got.Questions[1].ID)
	assert.Equal(t, int64(125), got.Questions[0].Answers[0].ID)
	assert.Equal(t, int64(124), got.Questions[0].Answers[1].ID)
	require.NotNil(t, got.Questions[0].AnswerID)
	assert.Equal(t, int64(125), *got.Questions[0].AnswerID)
}

func TestReconcile_MatchByIDMintsUnknownAndDuplicateIDs(t *testing.T) {
	r := newTestReconciler(MatchByID)
	prev := existingQuiz()

	s := FromQuiz(prev)
	dup := s.Questions[0]
	s.Questions = append(s.Questions, dup)
	s.Questions[1].ID = 9999
	// An answer id that belongs to another question is not reused.
	s.Questions[0].Answers[1].ID = 124

	got := r.Reconcile(mustValidate(t, s), &prev)

	require.Len(t, got.Questions, 3)
	assert.Equal(t, int64(53), got.Questions[0].ID)
	assert.Equal(t, int64(122), got.Questions[0].Answers[0].ID)
	assert.Greater(t, got.Questions[0].Answers[1].ID, int64(1000))
	assert.Greater(t, got.Questions[1].ID, int64(1000))
	assert.Greater(t, got.Questions[2].ID, int64(1000))
	assert.NotEqual(t, got.Questions[1].ID, got.Questions[2].ID)
}

func TestParseMatchStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    MatchStrategy
		wantErr bool
	}{
		{"", MatchByPosition, false},
		{"position", MatchByPosition, false},
		{"id", MatchByID, false},
		{"name", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMatchStrategy(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
