package quiz

// Submission is an untrusted quiz payload as produced by a form or decoded
// from JSON. Nothing in it is trusted until Validate accepts it.
//
// The optional ID fields carry client-side identifiers for entries that
// already exist. Positional reconciliation ignores them; MatchByID uses them.
type Submission struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	URL         string          `json:"url"`
	Questions   []QuestionInput `json:"questions_answers"`
}

// QuestionInput is one question slot of a Submission.
type QuestionInput struct {
	ID            int64         `json:"id,omitempty"`
	Text          string        `json:"text"`
	FeedbackTrue  string        `json:"feedback_true"`
	FeedbackFalse string        `json:"feedback_false"`
	Answers       []AnswerInput `json:"answers"`
}

// AnswerInput is one answer slot of a QuestionInput.
type AnswerInput struct {
	ID     int64  `json:"id,omitempty"`
	Text   string `json:"text"`
	IsTrue bool   `json:"is_true"`
}

// FromQuiz builds the submission that reproduces q, used to prefill an
// edit form.
func FromQuiz(q Quiz) Submission {
	s := Submission{
		Title:       q.Title,
		Description: q.Description,
		URL:         q.URL,
		Questions:   make([]QuestionInput, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		qi := QuestionInput{
			ID:            question.ID,
			Text:          question.Text,
			FeedbackTrue:  question.FeedbackTrue,
			FeedbackFalse: question.FeedbackFalse,
			Answers:       make([]AnswerInput, 0, len(question.Answers)),
		}
		for _, a := range question.Answers {
			qi.Answers = append(qi.Answers, AnswerInput{ID: a.ID, Text: a.Text, IsTrue: a.IsTrue})
		}
		s.Questions = append(s.Questions, qi)
	}
	return s
}

// NewSubmission returns the blank payload a "create" form starts from:
// one question with one empty answer.
func NewSubmission() Submission {
	return Submission{
		Questions: []QuestionInput{
			{Answers: []AnswerInput{{}}},
		},
	}
}

// Clone returns a deep copy of s.
func (s Submission) Clone() Submission {
	out := s
	if s.Questions == nil {
		return out
	}
	out.Questions = make([]QuestionInput, len(s.Questions))
	for i, q := range s.Questions {
		cp := q
		if q.Answers != nil {
			cp.Answers = append([]AnswerInput(nil), q.Answers...)
		}
		out.Questions[i] = cp
	}
	return out
}

// SetTrueAnswer marks answer j of question i as the true one and clears the
// flag on its siblings. Passing a j that is already true clears it.
func (s *Submission) SetTrueAnswer(i, j int) {
	if i < 0 || i >= len(s.Questions) {
		return
	}
	answers := s.Questions[i].Answers
	if j < 0 || j >= len(answers) {
		return
	}
	if answers[j].IsTrue {
		answers[j].IsTrue = false
		return
	}
	for k := range answers {
		answers[k].IsTrue = k == j
	}
}

// AddQuestion appends a blank question with one empty answer.
func (s *Submission) AddQuestion() {
	s.Questions = append(s.Questions, QuestionInput{Answers: []AnswerInput{{}}})
}

// AddAnswer appends a blank answer to question i.
func (s *Submission) AddAnswer(i int) {
	if i < 0 || i >= len(s.Questions) {
		return
	}
	s.Questions[i].Answers = append(s.Questions[i].Answers, AnswerInput{})
}

// RemoveQuestion drops question i.
func (s *Submission) RemoveQuestion(i int) {
	if i < 0 || i >= len(s.Questions) {
		return
	}
	s.Questions = append(s.Questions[:i:i], s.Questions[i+1:]...)
}

// RemoveAnswer drops answer j of question i.
func (s *Submission) RemoveAnswer(i, j int) {
	if i < 0 || i >= len(s.Questions) {
		return
	}
	answers := s.Questions[i].Answers
	if j < 0 || j >= len(answers) {
		return
	}
	s.Questions[i].Answers = append(answers[:j:j], answers[j+1:]...)
}
