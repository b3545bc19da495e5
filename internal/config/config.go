package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/quizapp/internal/quiz"
)

// Config holds the settings a session is created from.
type Config struct {
	// IDSeed is the value the identifier generator starts counting from.
	// Zero means "current wall clock in milliseconds".
	IDSeed int64

	// Match selects how edits are reconciled: "position" or "id".
	Match string

	// Seed populates a new session with the example quiz.
	Seed bool

	// Verbose writes an audit line per applied change to stderr.
	Verbose bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Match: string(quiz.MatchByPosition),
		Seed:  true,
	}
}

// ConfigFromEnv builds a Config from QUIZAPP_* environment variables,
// falling back to defaults for unset values. Unparseable numbers are
// reported on stderr and ignored.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if s := os.Getenv("QUIZAPP_ID_SEED"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: ignoring QUIZAPP_ID_SEED=%q: %v\n", s, err)
		} else {
			cfg.IDSeed = n
		}
	}
	if m := os.Getenv("QUIZAPP_MATCH"); m != "" {
		cfg.Match = m
	}
	if v := os.Getenv("QUIZAPP_NO_SEED"); v != "" {
		if off, err := strconv.ParseBool(v); err == nil {
			cfg.Seed = !off
		}
	}
	if v := os.Getenv("QUIZAPP_VERBOSE"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = on
		}
	}

	return cfg
}

// MatchStrategy returns the parsed reconciliation strategy.
func (c Config) MatchStrategy() (quiz.MatchStrategy, error) {
	return quiz.ParseMatchStrategy(c.Match)
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.IDSeed < 0 {
		return fmt.Errorf("id seed must not be negative, got %d", c.IDSeed)
	}
	if _, err := c.MatchStrategy(); err != nil {
		return fmt.Errorf("QUIZAPP_MATCH: %w", err)
	}
	return nil
}
