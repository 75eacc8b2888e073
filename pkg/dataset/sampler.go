package dataset

import (
	"math"
	"math/rand/v2"
)

// DefaultSeed keeps runs reproducible when no seed is configured.
const DefaultSeed uint64 = 42

// Sampler is the single random stream shared by all generators of a run.
// It is not safe for concurrent use; generators consume it in a fixed order.
type Sampler struct {
	rand *rand.Rand
}

// NewSampler returns a sampler whose stream is fully determined by seed.
func NewSampler(seed uint64) *Sampler {
	return &Sampler{rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntRange returns an int in [lo, hi], both ends inclusive.
func (s *Sampler) IntRange(lo, hi int) int {
	return lo + s.rand.IntN(hi-lo+1)
}

// Uniform returns a float in [lo, hi).
func (s *Sampler) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rand.Float64()
}

// Gauss draws from a normal distribution with the given mean and standard deviation.
func (s *Sampler) Gauss(mu, sigma float64) float64 {
	return mu + sigma*s.rand.NormFloat64()
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rand.Float64() < p
}

// Choice picks one element uniformly.
func Choice[T any](s *Sampler, xs []T) T {
	return xs[s.rand.IntN(len(xs))]
}

// WeightedChoice picks one element with probability proportional to its weight.
// weights must have the same length as xs.
func WeightedChoice[T any](s *Sampler, xs []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}

	r := s.rand.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return xs[i]
		}
	}
	// float rounding can leave r at exactly zero after the last weight
	return xs[len(xs)-1]
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
