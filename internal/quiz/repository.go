package quiz

import (
	"errors"
	"sync"
)

var (
	ErrQuizNotFound  = errors.New("quiz not found")
	ErrDuplicateQuiz = errors.New("quiz id already exists")
)

// Repository is the in-memory, ordered collection of quiz records. It lives
// as long as the session that owns it.
type Repository struct {
	mu      sync.RWMutex
	quizzes []Quiz
}

// NewRepository creates a repository holding initial in order.
func NewRepository(initial ...Quiz) *Repository {
	r := &Repository{quizzes: make([]Quiz, 0, len(initial))}
	for _, q := range initial {
		r.quizzes = append(r.quizzes, q.Clone())
	}
	return r
}

// Add appends q. Adding an id that is already present returns ErrDuplicateQuiz.
func (r *Repository) Add(q Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(q.ID) >= 0 {
		return ErrDuplicateQuiz
	}
	r.quizzes = append(r.quizzes, q.Clone())
	return nil
}

// Edit replaces the record whose id matches q.ID. The collection is left
// unchanged and ErrQuizNotFound returned when no record matches.
func (r *Repository) Edit(q Quiz) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(q.ID)
	if idx < 0 {
		return ErrQuizNotFound
	}
	r.quizzes[idx] = q.Clone()
	return nil
}

// Delete removes the record with the given id and reports whether one was
// removed. Deleting an absent id is a no-op.
func (r *Repository) Delete(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false
	}
	r.quizzes = append(r.quizzes[:idx:idx], r.quizzes[idx+1:]...)
	return true
}

// Get returns a copy of the record with the given id.
func (r *Repository) Get(id int64) (Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return Quiz{}, ErrQuizNotFound
	}
	return r.quizzes[idx].Clone(), nil
}

// List returns a snapshot of every record in insertion order. The snapshot
// is a deep copy; mutating it does not affect the repository.
func (r *Repository) List() []Quiz {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Quiz, len(r.quizzes))
	for i, q := range r.quizzes {
		out[i] = q.Clone()
	}
	return out
}

// Len returns the number of records.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quizzes)
}

func (r *Repository) indexOf(id int64) int {
	for i := range r.quizzes {
		if r.quizzes[i].ID == id {
			return i
		}
	}
	return -1
}
