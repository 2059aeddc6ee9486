package optimize

import (
	"math"
	"math/rand"
)

// Candidate is one trial's parameters and, once scored, its space-created
// metric in square meters.
type Candidate struct {
	DX      float64
	DY      float64
	Speed   float64
	Heading float64
	Score   float64
}

// Velocity converts the polar (speed, heading) pair to cartesian components.
func (c Candidate) Velocity() (vx, vy float64) {
	return c.Speed * math.Sin(c.Heading), c.Speed * math.Cos(c.Heading)
}

// Sampler is the sampling capability the optimizer drives. Implementations
// may be pure random, quasi-random or surrogate-guided, as long as proposals
// respect the domain bounds.
type Sampler interface {
	// Propose draws the next candidate from the domain.
	Propose(d Domain) Candidate

	// Record reports a scored candidate back to the sampler.
	Record(c Candidate)

	// Best returns the highest-scoring candidate recorded so far.
	Best() (Candidate, bool)
}

// randomSampler proposes uniformly within the domain and remembers the best
// recorded candidate.
type randomSampler struct {
	rng  *rand.Rand
	best Candidate
	seen bool
}

// NewRandomSampler returns a uniform random sampler with the given seed.
func NewRandomSampler(seed int64) Sampler {
	return &randomSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randomSampler) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *randomSampler) Propose(d Domain) Candidate {
	return Candidate{
		DX:      s.uniform(d.DXMin, d.DXMax),
		DY:      s.uniform(d.DYMin, d.DYMax),
		Speed:   s.uniform(d.SpeedMin, d.SpeedMax),
		Heading: s.uniform(d.HeadingMin, d.HeadingMax),
	}
}

func (s *randomSampler) Record(c Candidate) {
	if !s.seen || c.Score > s.best.Score {
		s.best = c
		s.seen = true
	}
}

func (s *randomSampler) Best() (Candidate, bool) {
	return s.best, s.seen
}
