package quiz

import (
	"fmt"
	"time"
)

// MatchStrategy selects how submitted questions and answers are paired with
// the entries of the previous record during an edit.
type MatchStrategy string

const (
	// MatchByPosition pairs entries by index. Inserting, removing or
	// reordering an entry shifts the identifiers of every sibling after it.
	MatchByPosition MatchStrategy = "position"

	// MatchByID pairs entries by the client-side ID carried on each input.
	// Entries with an unknown or missing ID get a fresh identifier.
	MatchByID MatchStrategy = "id"
)

// ParseMatchStrategy converts a config value into a MatchStrategy.
func ParseMatchStrategy(s string) (MatchStrategy, error) {
	switch MatchStrategy(s) {
	case MatchByPosition, MatchByID:
		return MatchStrategy(s), nil
	case "":
		return MatchByPosition, nil
	}
	return "", fmt.Errorf("unknown match strategy %q (want %q or %q)", s, MatchByPosition, MatchByID)
}

// Reconciler turns a validated submission into the next Quiz record.
type Reconciler struct {
	ids   *IDGenerator
	match MatchStrategy
	now   func() time.Time
}

// NewReconciler creates a Reconciler minting identifiers from ids.
func NewReconciler(ids *IDGenerator, match MatchStrategy) *Reconciler {
	if match == "" {
		match = MatchByPosition
	}
	return &Reconciler{
		ids:   ids,
		match: match,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// SetClock replaces the time source used for created/modified.
func (r *Reconciler) SetClock(now func() time.Time) {
	r.now = now
}

// Strategy returns the configured match strategy.
func (r *Reconciler) Strategy() MatchStrategy {
	return r.match
}

// Reconcile builds the record for v. With prev == nil a brand new quiz is
// minted; otherwise prev's id and created time are kept and nested
// identifiers are carried over according to the match strategy.
func (r *Reconciler) Reconcile(v Validated, prev *Quiz) Quiz {
	sub := v.sub
	now := r.now()

	out := Quiz{
		Title:       sub.Title,
		Description: sub.Description,
		URL:         sub.URL,
		Questions:   make([]Question, 0, len(sub.Questions)),
		Modified:    now,
	}

	if prev == nil {
		out.ID = r.ids.Next()
		out.Created = now
		for _, qi := range sub.Questions {
			out.Questions = append(out.Questions, r.buildQuestion(qi, nil, nil))
		}
		return out
	}

	out.ID = prev.ID
	out.Created = prev.Created
	if prev.Score != nil {
		s := *prev.Score
		out.Score = &s
	}

	switch r.match {
	case MatchByID:
		r.reconcileByID(&out, sub, prev)
	default:
		r.reconcileByPosition(&out, sub, prev)
	}
	return out
}

func (r *Reconciler) reconcileByPosition(out *Quiz, sub Submission, prev *Quiz) {
	for i, qi := range sub.Questions {
		var prevQ *Question
		if i < len(prev.Questions) {
			prevQ = &prev.Questions[i]
		}
		var answerIDs []int64
		if prevQ != nil {
			answerIDs = make([]int64, len(qi.Answers))
			for j := range qi.Answers {
				if j < len(prevQ.Answers) {
					answerIDs[j] = prevQ.Answers[j].ID
				}
			}
		}
		out.Questions = append(out.Questions, r.buildQuestion(qi, prevQ, answerIDs))
	}
}

func (r *Reconciler) reconcileByID(out *Quiz, sub Submission, prev *Quiz) {
	byID := make(map[int64]*Question, len(prev.Questions))
	for i := range prev.Questions {
		byID[prev.Questions[i].ID] = &prev.Questions[i]
	}
	usedQuestions := make(map[int64]bool)

	for _, qi := range sub.Questions {
		prevQ := byID[qi.ID]
		if qi.ID == 0 || prevQ == nil || usedQuestions[qi.ID] {
			out.Questions = append(out.Questions, r.buildQuestion(qi, nil, nil))
			continue
		}
		usedQuestions[qi.ID] = true

		known := make(map[int64]bool, len(prevQ.Answers))
		for _, a := range prevQ.Answers {
			known[a.ID] = true
		}
		answerIDs := make([]int64, len(qi.Answers))
		for j, ai := range qi.Answers {
			if ai.ID != 0 && known[ai.ID] {
				answerIDs[j] = ai.ID
				delete(known, ai.ID)
			}
		}
		out.Questions = append(out.Questions, r.buildQuestion(qi, prevQ, answerIDs))
	}
}

// buildQuestion assembles a Question from qi. prev supplies the question id
// when non-nil; answerIDs[j] supplies answer j's id when non-zero. Anything
// missing is minted.
func (r *Reconciler) buildQuestion(qi QuestionInput, prev *Question, answerIDs []int64) Question {
	q := Question{
		Text:          qi.Text,
		FeedbackTrue:  qi.FeedbackTrue,
		FeedbackFalse: qi.FeedbackFalse,
		Answers:       make([]Answer, 0, len(qi.Answers)),
	}
	if prev != nil {
		q.ID = prev.ID
	} else {
		q.ID = r.ids.Next()
	}

	for j, ai := range qi.Answers {
		var id int64
		if j < len(answerIDs) {
			id = answerIDs[j]
		}
		if id == 0 {
			id = r.ids.Next()
		}
		q.Answers = append(q.Answers, Answer{ID: id, Text: ai.Text, IsTrue: ai.IsTrue})
		if ai.IsTrue {
			trueID := id
			q.AnswerID = &trueID
		}
	}
	return q
}
