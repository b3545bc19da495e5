package quiz

import "time"

// Answer is a candidate response to a question.
type Answer struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	IsTrue bool   `json:"is_true"`
}

// Question is a prompt with exactly one true answer among Answers.
// AnswerID mirrors the ID of that answer and is maintained by the Reconciler.
type Question struct {
	ID            int64    `json:"id"`
	Text          string   `json:"text"`
	FeedbackTrue  string   `json:"feedback_true"`
	FeedbackFalse string   `json:"feedback_false"`
	AnswerID      *int64   `json:"answer_id"`
	Answers       []Answer `json:"answers"`
}

// Quiz is a complete, immutable quiz record as held by the Repository.
type Quiz struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	Questions   []Question `json:"questions_answers"`
	Created     time.Time  `json:"created"`
	Modified    time.Time  `json:"modified"`
	Score       *float64   `json:"score"`
}

// TrueAnswer returns the answer flagged true, or false if there is none.
func (q Question) TrueAnswer() (Answer, bool) {
	for _, a := range q.Answers {
		if a.IsTrue {
			return a, true
		}
	}
	return Answer{}, false
}

// Clone returns a deep copy so callers can never alias repository state.
func (q Quiz) Clone() Quiz {
	out := q
	if q.Score != nil {
		s := *q.Score
		out.Score = &s
	}
	if q.Questions == nil {
		return out
	}
	out.Questions = make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		cp := question
		if question.AnswerID != nil {
			id := *question.AnswerID
			cp.AnswerID = &id
		}
		if question.Answers != nil {
			cp.Answers = append([]Answer(nil), question.Answers...)
		}
		out.Questions[i] = cp
	}
	return out
}
