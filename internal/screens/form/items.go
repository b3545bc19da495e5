package form

import "github.com/abhisek/quizapp/internal/quiz"

type itemKind int

const (
	itemTitle itemKind = iota
	itemDescription
	itemURL
	itemQuestionText
	itemFeedbackTrue
	itemFeedbackFalse
	itemAnswerText
	itemAnswerCorrect
	itemAddAnswer
	itemAddQuestion
	itemSubmit
)

// item is one focusable element of the form. q and a index the question
// and answer the element belongs to, where that applies.
type item struct {
	kind itemKind
	q, a int
}

// items lists the focusable elements of s in display order.
func items(s quiz.Submission) []item {
	out := []item{{kind: itemTitle}, {kind: itemDescription}, {kind: itemURL}}
	for i, question := range s.Questions {
		out = append(out,
			item{kind: itemQuestionText, q: i},
			item{kind: itemFeedbackTrue, q: i},
			item{kind: itemFeedbackFalse, q: i},
		)
		for j := range question.Answers {
			out = append(out,
				item{kind: itemAnswerText, q: i, a: j},
				item{kind: itemAnswerCorrect, q: i, a: j},
			)
		}
		out = append(out, item{kind: itemAddAnswer, q: i})
	}
	return append(out, item{kind: itemAddQuestion}, item{kind: itemSubmit})
}

func (it item) isText() bool {
	switch it.kind {
	case itemTitle, itemDescription, itemURL,
		itemQuestionText, itemFeedbackTrue, itemFeedbackFalse, itemAnswerText:
		return true
	}
	return false
}

func (it item) label() string {
	switch it.kind {
	case itemTitle:
		return "Title"
	case itemDescription:
		return "Description"
	case itemURL:
		return "Video URL"
	case itemQuestionText:
		return "Question Text"
	case itemFeedbackTrue:
		return "Feedback for Correct Answer"
	case itemFeedbackFalse:
		return "Feedback for Incorrect Answer"
	case itemAnswerText:
		return "Answer Text"
	case itemAnswerCorrect:
		return "Correct Answer"
	case itemAddAnswer:
		return "Add Answer"
	case itemAddQuestion:
		return "Add Question"
	}
	return ""
}

// path is the validation path whose messages belong under this element.
// Buttons carry the group-level messages of what they add to.
func (it item) path() string {
	switch it.kind {
	case itemTitle:
		return "title"
	case itemDescription:
		return "description"
	case itemURL:
		return "url"
	case itemQuestionText:
		return quiz.QuestionPath(it.q, "text")
	case itemFeedbackTrue:
		return quiz.QuestionPath(it.q, "feedback_true")
	case itemFeedbackFalse:
		return quiz.QuestionPath(it.q, "feedback_false")
	case itemAnswerText:
		return quiz.AnswerPath(it.q, it.a, "text")
	case itemAnswerCorrect:
		return quiz.AnswerPath(it.q, it.a, "is_true")
	case itemAddAnswer:
		return quiz.QuestionPath(it.q, "answers")
	case itemAddQuestion:
		return "questions_answers"
	}
	return ""
}

func text(s *quiz.Submission, it item) string {
	switch it.kind {
	case itemTitle:
		return s.Title
	case itemDescription:
		return s.Description
	case itemURL:
		return s.URL
	case itemQuestionText:
		return s.Questions[it.q].Text
	case itemFeedbackTrue:
		return s.Questions[it.q].FeedbackTrue
	case itemFeedbackFalse:
		return s.Questions[it.q].FeedbackFalse
	case itemAnswerText:
		return s.Questions[it.q].Answers[it.a].Text
	}
	return ""
}

func setText(s *quiz.Submission, it item, v string) {
	switch it.kind {
	case itemTitle:
		s.Title = v
	case itemDescription:
		s.Description = v
	case itemURL:
		s.URL = v
	case itemQuestionText:
		s.Questions[it.q].Text = v
	case itemFeedbackTrue:
		s.Questions[it.q].FeedbackTrue = v
	case itemFeedbackFalse:
		s.Questions[it.q].FeedbackFalse = v
	case itemAnswerText:
		s.Questions[it.q].Answers[it.a].Text = v
	}
}
