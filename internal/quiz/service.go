package quiz

import (
	"context"
	"fmt"
	"io"
)

// Service is the narrow interface the presentation layer talks to:
// validation, reconciliation and the repository composed.
type Service struct {
	repo       *Repository
	reconciler *Reconciler
	audit      io.Writer
}

// NewService creates a Service applying reconciled records to repo.
func NewService(repo *Repository, reconciler *Reconciler) *Service {
	return &Service{
		repo:       repo,
		reconciler: reconciler,
	}
}

// SetAuditLog makes the service write one line per applied change to w.
func (s *Service) SetAuditLog(w io.Writer) {
	s.audit = w
}

// Submit validates sub and stores the resulting quiz. With previousID nil a
// new quiz is added; otherwise the quiz with that id is replaced. Validation
// failures are returned as *ValidationErrors and leave the repository
// untouched.
func (s *Service) Submit(ctx context.Context, sub Submission, previousID *int64) (Quiz, error) {
	q, err := s.Preview(ctx, sub, previousID)
	if err != nil {
		return Quiz{}, err
	}

	if previousID == nil {
		if err := s.repo.Add(q); err != nil {
			return Quiz{}, fmt.Errorf("add quiz %d: %w", q.ID, err)
		}
		s.logf("quiz added id=%d questions=%d", q.ID, len(q.Questions))
		return q, nil
	}

	if err := s.repo.Edit(q); err != nil {
		return Quiz{}, fmt.Errorf("edit quiz %d: %w", q.ID, err)
	}
	s.logf("quiz edited id=%d questions=%d", q.ID, len(q.Questions))
	return q, nil
}

// SubmitJSON decodes a raw JSON payload and submits it.
func (s *Service) SubmitJSON(ctx context.Context, raw []byte, previousID *int64) (Quiz, error) {
	sub, err := DecodeSubmission(raw)
	if err != nil {
		return Quiz{}, err
	}
	return s.Submit(ctx, sub, previousID)
}

// Preview runs validation and reconciliation without touching the
// repository. Identifiers minted for the preview are consumed.
func (s *Service) Preview(ctx context.Context, sub Submission, previousID *int64) (Quiz, error) {
	if err := ctx.Err(); err != nil {
		return Quiz{}, err
	}

	v, err := Validate(sub)
	if err != nil {
		return Quiz{}, err
	}

	if previousID == nil {
		return s.reconciler.Reconcile(v, nil), nil
	}

	prev, err := s.repo.Get(*previousID)
	if err != nil {
		return Quiz{}, fmt.Errorf("edit quiz %d: %w", *previousID, err)
	}
	return s.reconciler.Reconcile(v, &prev), nil
}

// List returns a read-only snapshot of every quiz.
func (s *Service) List() []Quiz {
	return s.repo.List()
}

// Get returns the quiz with the given id.
func (s *Service) Get(id int64) (Quiz, error) {
	return s.repo.Get(id)
}

// Delete removes the quiz with the given id, reporting whether it existed.
func (s *Service) Delete(id int64) bool {
	removed := s.repo.Delete(id)
	if removed {
		s.logf("quiz deleted id=%d", id)
	}
	return removed
}

func (s *Service) logf(format string, args ...any) {
	if s.audit == nil {
		return
	}
	fmt.Fprintf(s.audit, format+"\n", args...)
}
