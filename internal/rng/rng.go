package rng

import "math/rand/v2"

// Source wraps a seeded PRNG. Every generator in the simulation draws from an
// injected Source so a fixed seed replays an identical trajectory.
type Source struct {
	r *rand.Rand
}

func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

func (s *Source) Float64() float64 { return s.r.Float64() }

func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.IntN(n)
}

// Range returns a uniform draw in [min, max).
func (s *Source) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.r.Float64()*(max-min)
}

// Chance returns true with probability p (clamped to [0,1]).
func (s *Source) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

// WeightedIndex picks an index proportionally to weights. Zero and negative
// weights never win. Returns -1 when no weight is positive.
func (s *Source) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	roll := s.r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if roll < acc {
			return i
		}
	}
	return len(weights) - 1
}
