package faq

import (
	"math/rand/v2"
	"sync"
)

// RandSource picks an index in [0, n). It is the only source of
// nondeterminism in the engine.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n)
}

// SeededRand is a reproducible RandSource safe for concurrent use.
type SeededRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewSeededRand(seed uint64) *SeededRand {
	return &SeededRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *SeededRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// FixedIndex always returns the same index, clamped to n.
type FixedIndex int

func (f FixedIndex) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

func pick(r RandSource, list []string, fallback string) string {
	if len(list) == 0 {
		return fallback
	}
	if r == nil {
		r = globalRand{}
	}
	return list[r.IntN(len(list))]
}
