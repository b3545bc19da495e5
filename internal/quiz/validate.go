package quiz

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinTitleLength       = 5
	MinDescriptionLength = 20
	MinAnswers           = 2
)

// videoURLPattern accepts youtube.com watch/embed/v/playlist links and
// youtu.be short links followed by an 11 character video token.
var videoURLPattern = regexp.MustCompile(
	`^((https?://)?(www\.)?(youtube\.com/(watch\?v=|embed/|v/|playlist\?list=)|youtu\.be/))([a-zA-Z0-9_-]{11})$`)

// FieldError is a single rule violation addressed by a field path such as
// "title" or "questions_answers[1].answers[0].text".
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects every violation found in a submission, in the
// order the fields appear.
type ValidationErrors struct {
	Fields []FieldError
}

func (e *ValidationErrors) Error() string {
	lines := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		lines = append(lines, f.Error())
	}
	return fmt.Sprintf("quiz validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// For returns the messages recorded against path.
func (e *ValidationErrors) For(path string) []string {
	if e == nil {
		return nil
	}
	var out []string
	for _, f := range e.Fields {
		if f.Path == path {
			out = append(out, f.Message)
		}
	}
	return out
}

// Has reports whether any message was recorded against path.
func (e *ValidationErrors) Has(path string) bool {
	return len(e.For(path)) > 0
}

func (e *ValidationErrors) add(path, msg string) {
	e.Fields = append(e.Fields, FieldError{Path: path, Message: msg})
}

// QuestionPath addresses field of question i ("" addresses the question itself).
func QuestionPath(i int, field string) string {
	p := fmt.Sprintf("questions_answers[%d]", i)
	if field == "" {
		return p
	}
	return p + "." + field
}

// AnswerPath addresses field of answer j of question i.
func AnswerPath(i, j int, field string) string {
	p := fmt.Sprintf("%s[%d]", QuestionPath(i, "answers"), j)
	if field == "" {
		return p
	}
	return p + "." + field
}

// Validated is a submission that passed Validate. It can only be obtained
// from Validate, so the Reconciler never sees unchecked input.
type Validated struct {
	sub Submission
}

// Submission returns a copy of the validated payload.
func (v Validated) Submission() Submission {
	return v.sub.Clone()
}

// Validate checks s against the quiz rules. On success it returns the
// validated value; otherwise the error is a *ValidationErrors listing every
// violation. Validate has no side effects.
func Validate(s Submission) (Validated, error) {
	errs := &ValidationErrors{}

	switch {
	case s.Title == "":
		errs.add("title", "Title is required")
	case utf8.RuneCountInString(s.Title) < MinTitleLength:
		errs.add("title", fmt.Sprintf("Title must be at least %d characters", MinTitleLength))
	}

	switch {
	case s.Description == "":
		errs.add("description", "Description is required")
	case utf8.RuneCountInString(s.Description) < MinDescriptionLength:
		errs.add("description", fmt.Sprintf("Description must be at least %d characters", MinDescriptionLength))
	}

	switch {
	case s.URL == "":
		errs.add("url", "Video URL is required")
	case !videoURLPattern.MatchString(s.URL):
		errs.add("url", "Enter a valid YouTube URL")
	}

	switch {
	case s.Questions == nil:
		errs.add("questions_answers", "Questions are required")
	case len(s.Questions) == 0:
		errs.add("questions_answers", "At least one question is required")
	}

	for i, q := range s.Questions {
		validateQuestion(errs, i, q)
	}

	if len(errs.Fields) > 0 {
		return Validated{}, errs
	}
	return Validated{sub: s.Clone()}, nil
}

func validateQuestion(errs *ValidationErrors, i int, q QuestionInput) {
	if q.Text == "" {
		errs.add(QuestionPath(i, "text"), "Question text is required")
	}
	if q.FeedbackTrue == "" {
		errs.add(QuestionPath(i, "feedback_true"), "Feedback for correct answer is required")
	}
	if q.FeedbackFalse == "" {
		errs.add(QuestionPath(i, "feedback_false"), "Feedback for incorrect answer is required")
	}

	answersPath := QuestionPath(i, "answers")
	if q.Answers == nil {
		errs.add(answersPath, "Answers are required")
		return
	}

	trueCount := 0
	for j, a := range q.Answers {
		if a.Text == "" {
			errs.add(AnswerPath(i, j, "text"), "Answer text is required")
		}
		if a.IsTrue {
			trueCount++
		}
	}
	if len(q.Answers) < MinAnswers {
		errs.add(answersPath, "Each question should have at least two answers")
	}
	if trueCount != 1 {
		errs.add(answersPath, "Each question must have exactly one correct answer")
	}
}

// IsVideoURL reports whether u is an accepted video link.
func IsVideoURL(u string) bool {
	return videoURLPattern.MatchString(u)
}
