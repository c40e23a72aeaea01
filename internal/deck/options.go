package deck

import (
	"math/rand/v2"
	"time"

	"github.com/studiowebux/flashcli/internal/idgen"
	"go.uber.org/zap"
)

// ShuffleMode selects the shuffle algorithm
type ShuffleMode int

const (
	// ShuffleUniform produces a uniformly random permutation (Fisher-Yates)
	ShuffleUniform ShuffleMode = iota
	// ShuffleLegacy sorts with a random comparator, reproducing older (biased) behavior
	ShuffleLegacy
)

// ParseShuffleMode maps a config value to a ShuffleMode
func ParseShuffleMode(s string) ShuffleMode {
	if s == "legacy" {
		return ShuffleLegacy
	}
	return ShuffleUniform
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator sets the id source for new decks and cards
func WithIDGenerator(g idgen.Generator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock sets the time source for timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand sets the random source used by Shuffle
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rng = r }
}

// WithShuffleMode selects the shuffle algorithm
func WithShuffleMode(mode ShuffleMode) Option {
	return func(s *Store) { s.shuffleMode = mode }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}
