package quiz

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_Monotonic(t *testing.T) {
	g := NewIDGenerator(10)

	assert.Equal(t, int64(11), g.Next())
	assert.Equal(t, int64(12), g.Next())
}

func TestIDGenerator_ClockSeed(t *testing.T) {
	g := NewIDGenerator(0)
	assert.Greater(t, g.Next(), int64(1_600_000_000_000))
}

func TestIDGenerator_Observe(t *testing.T) {
	g := NewIDGenerator(10)

	g.Observe(5)
	assert.Equal(t, int64(11), g.Next())

	g.Observe(100)
	assert.Equal(t, int64(101), g.Next())

	g.ObserveQuiz(SeedQuiz())
	assert.Equal(t, int64(102), g.Next())
}

func TestIDGenerator_Concurrent(t *testing.T) {
	g := NewIDGenerator(1)

	const workers, perWorker = 8, 200
	results := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				results <- g.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool)
	for id := range results {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
}
