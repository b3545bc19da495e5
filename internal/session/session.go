package session

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizapp/internal/config"
	"github.com/abhisek/quizapp/internal/quiz"
)

// Session owns the quiz collection for the lifetime of one process. Nothing
// survives a restart: a new session starts from the example quiz (or empty).
type Session struct {
	// ID uniquely identifies this run.
	ID string

	// StartedAt is when the session was created.
	StartedAt time.Time

	// Match is the reconciliation strategy edits use.
	Match quiz.MatchStrategy

	// Quizzes is the only way callers reach the repository.
	Quizzes *quiz.Service
}

// New creates a session from cfg.
func New(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	match, err := cfg.MatchStrategy()
	if err != nil {
		return nil, err
	}

	ids := quiz.NewIDGenerator(cfg.IDSeed)
	var initial []quiz.Quiz
	if cfg.Seed {
		seed := quiz.SeedQuiz()
		ids.ObserveQuiz(seed)
		initial = append(initial, seed)
	}

	repo := quiz.NewRepository(initial...)
	svc := quiz.NewService(repo, quiz.NewReconciler(ids, match))

	return &Session{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
		Match:     match,
		Quizzes:   svc,
	}, nil
}

// SetAuditLog sends one line per applied change to w.
func (s *Session) SetAuditLog(w io.Writer) {
	s.Quizzes.SetAuditLog(w)
}
