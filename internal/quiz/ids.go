package quiz

import (
	"sync/atomic"
	"time"
)

// IDGenerator hands out process-unique identifiers for quizzes, questions
// and answers. It is a monotonic counter, so two calls within the same clock
// tick still get different values.
type IDGenerator struct {
	last atomic.Int64
}

// NewIDGenerator creates a generator whose first identifier is seed+1.
// A seed <= 0 means "use the current wall clock in milliseconds".
func NewIDGenerator(seed int64) *IDGenerator {
	if seed <= 0 {
		seed = time.Now().UnixMilli()
	}
	g := &IDGenerator{}
	g.last.Store(seed)
	return g
}

// Next returns a new identifier, strictly greater than every previous one.
func (g *IDGenerator) Next() int64 {
	return g.last.Add(1)
}

// Observe records an identifier minted elsewhere (for example fixture data)
// so Next never returns it.
func (g *IDGenerator) Observe(id int64) {
	for {
		cur := g.last.Load()
		if id <= cur {
			return
		}
		if g.last.CompareAndSwap(cur, id) {
			return
		}
	}
}

// ObserveQuiz records every identifier contained in q.
func (g *IDGenerator) ObserveQuiz(q Quiz) {
	g.Observe(q.ID)
	for _, question := range q.Questions {
		g.Observe(question.ID)
		for _, a := range question.Answers {
			g.Observe(a.ID)
		}
	}
}
