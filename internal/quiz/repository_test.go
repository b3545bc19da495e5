package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AddThenList(t *testing.T) {
	repo := NewRepository(SeedQuiz())
	q := existingQuiz()
	q.ID = 77

	require.NoError(t, repo.Add(q))

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, SeedQuizID, list[0].ID)
	assert.Equal(t, q, list[1])
	// Repeated reads with no writes in between are identical.
	assert.Equal(t, list, repo.List())
}

func TestRepository_AddRejectsDuplicateID(t *testing.T) {
	repo := NewRepository(SeedQuiz())

	err := repo.Add(SeedQuiz())

	assert.ErrorIs(t, err, ErrDuplicateQuiz)
	assert.Equal(t, 1, repo.Len())
}

func TestRepository_EditReplacesWholeRecord(t *testing.T) {
	repo := NewRepository(SeedQuiz())
	edited := SeedQuiz()
	edited.Title = "renamed quiz"
	edited.Questions = edited.Questions[:1]

	require.NoError(t, repo.Edit(edited))

	got, err := repo.Get(SeedQuizID)
	require.NoError(t, err)
	assert.Equal(t, edited, got)
}

func TestRepository_EditUnknownIDIsReported(t *testing.T) {
	repo := NewRepository(SeedQuiz())
	before := repo.List()

	ghost := SeedQuiz()
	ghost.ID = 404

	assert.ErrorIs(t, repo.Edit(ghost), ErrQuizNotFound)
	assert.Equal(t, before, repo.List())
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	a := existingQuiz()
	a.ID = 1
	b := existingQuiz()
	b.ID = 2
	repo := NewRepository(a, b)

	assert.True(t, repo.Delete(1))
	afterFirst := repo.List()

	assert.False(t, repo.Delete(1))
	assert.Equal(t, afterFirst, repo.List())
	require.Len(t, afterFirst, 1)
	assert.Equal(t, int64(2), afterFirst[0].ID)
}

func TestRepository_DeleteKeepsOrder(t *testing.T) {
	var quizzes []Quiz
	for i := int64(1); i <= 4; i++ {
		q := existingQuiz()
		q.ID = i
		quizzes = append(quizzes, q)
	}
	repo := NewRepository(quizzes...)

	repo.Delete(2)

	var ids []int64
	for _, q := range repo.List() {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, ids)
}

func TestRepository_ListIsASnapshot(t *testing.T) {
	repo := NewRepository(SeedQuiz())

	list := repo.List()
	list[0].Title = "mutated"
	list[0].Questions[0].Answers[0].Text = "mutated"

	got, err := repo.Get(SeedQuizID)
	require.NoError(t, err)
	assert.Equal(t, "quiz title", got.Title)
	assert.Equal(t, "question 1 answer 1 false", got.Questions[0].Answers[0].Text)
}

func TestRepository_GetUnknownID(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Get(1)

	assert.ErrorIs(t, err, ErrQuizNotFound)
}

func TestSeedQuiz(t *testing.T) {
	q := SeedQuiz()

	assert.Equal(t, int64(29), q.ID)
	assert.Equal(t, "quiz title", q.Title)
	require.Len(t, q.Questions, 3)
	assert.Equal(t, []int{4, 2, 3}, []int{
		len(q.Questions[0].Answers), len(q.Questions[1].Answers), len(q.Questions[2].Answers),
	})
	for _, question := range q.Questions {
		trueCount := 0
		for _, a := range question.Answers {
			if a.IsTrue {
				trueCount++
			}
		}
		assert.Equal(t, 1, trueCount, "question %d", question.ID)
		assert.Nil(t, question.AnswerID)
	}
	assert.Equal(t, "09 Sep 2020", FormatDate(q.Created))
}
