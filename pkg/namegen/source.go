package namegen

import (
	"math/rand/v2"
	"sync"
)

// Source supplies the random picks made while sampling. IntN must return a
// value in [0, n) for n > 0. *rand.Rand from math/rand/v2 satisfies it, but
// is not safe for concurrent use on its own.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the source used when none is configured. It draws
// from the top-level math/rand/v2 generator and is safe for concurrent use.
func DefaultSource() Source { return globalSource{} }

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededSource returns a reproducible source seeded with seed. It is safe
// for concurrent use, though concurrent callers make the sequence of picks
// seen by any single caller unpredictable.
func NewSeededSource(seed uint64) Source {
	return &lockedSource{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}
