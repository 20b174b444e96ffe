package generator

import "math/rand"

// Source is the randomness consumed by the generator. It is passed in
// explicitly so tests can script the exact draws.
type Source interface {
	// IntN returns a uniform index in [0, n).
	IntN(n int) int
	// Uniform returns a uniform real in [lo, hi).
	Uniform(lo, hi float64) float64
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by math/rand seeded with seed.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) IntN(n int) int {
	return s.rng.Intn(n)
}

func (s *randSource) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}
