// Package optimize searches for a near-optimal alternative position and
// velocity for the analyzed player. Trials are scored through the
// counterfactual engine; the feasible displacement domain is bounded by the
// pitch and by the subject team's offside line.
package optimize

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/okian/counterspace/internal/app"
	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/domain/offside"
	"github.com/okian/counterspace/pkg/logger"
	"github.com/okian/counterspace/pkg/metrics"
)

// Default optimizer configuration constants.
const (
	// defaultJitter is the half-width (meters) of the displacement window the
	// velocity phase searches around the location phase's best point.
	defaultJitter = 0.5
	// locationPhaseSpeed is the negligible speed used while only the
	// displacement is being searched.
	locationPhaseSpeed = 0.01
	defaultSeed        = 42

	phaseLocation = "location"
	phaseVelocity = "velocity"
)

// Budget bounds the search. Trial counts are the only bound on total work.
type Budget struct {
	LocationTrials int
	VelocityTrials int
	// SizeOfGrid is the side length (meters) of the displacement square
	// searched around the player's current position.
	SizeOfGrid float64
	// MaxSpeed caps the speed range of the velocity phase, m/s.
	MaxSpeed float64
}

// Optimizer runs the two-phase stochastic search over one analysis context.
type Optimizer struct {
	analysis    *app.Analysis
	newSampler  func() Sampler
	parallelism int
	jitter      float64
	logger      logger.Logger
}

// Option applies a configuration option to the Optimizer.
type Option func(*Optimizer)

// WithSeed seeds the default random sampler.
func WithSeed(seed int64) Option {
	return func(o *Optimizer) {
		o.newSampler = func() Sampler { return NewRandomSampler(seed) }
	}
}

// WithSamplerFactory replaces the sampling strategy. The factory is invoked
// once per phase.
func WithSamplerFactory(f func() Sampler) Option {
	return func(o *Optimizer) {
		if f != nil {
			o.newSampler = f
		}
	}
}

// WithParallelism evaluates trials across up to n goroutines. Every trial
// reads the shared immutable baseline and scores its own perturbed clone, so
// this changes throughput, not results ordering guarantees.
func WithParallelism(n int) Option {
	return func(o *Optimizer) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithJitterWindow sets the velocity phase's displacement window half-width.
func WithJitterWindow(meters float64) Option {
	return func(o *Optimizer) {
		if meters >= 0 {
			o.jitter = meters
		}
	}
}

// WithLogger sets a custom logger for the optimizer.
func WithLogger(l logger.Logger) Option {
	return func(o *Optimizer) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates an optimizer over an existing analysis context.
func New(a *app.Analysis, opts ...Option) *Optimizer {
	o := &Optimizer{
		analysis:    a,
		newSampler:  func() Sampler { return NewRandomSampler(defaultSeed) },
		parallelism: 1,
		jitter:      defaultJitter,
		logger:      logger.Nop(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Run executes the location phase then the velocity phase and returns the
// best candidate found. The returned candidate's velocity components follow
// vx = speed*sin(heading), vy = speed*cos(heading).
func (o *Optimizer) Run(ctx context.Context, b Budget) (Candidate, error) {
	if err := validateBudget(b); err != nil {
		metrics.RecordValidationError()
		return Candidate{}, err
	}

	line, err := offside.Line(o.analysis.Opponents(), o.analysis.AttackDirection())
	if err != nil {
		return Candidate{}, err
	}

	dom, err := searchDomain(o.analysis.SubjectState(), o.analysis.FieldDimensions(),
		o.analysis.AttackDirection(), line, b.SizeOfGrid)
	if err != nil {
		return Candidate{}, err
	}
	o.logger.Debug(ctx, "search domain ready",
		logger.Float64("offside_line", line),
		logger.Float64("dx_min", dom.DXMin), logger.Float64("dx_max", dom.DXMax),
		logger.Float64("dy_min", dom.DYMin), logger.Float64("dy_max", dom.DYMax),
	)

	best := Candidate{Score: math.Inf(-1)}

	if b.LocationTrials > 0 {
		locDom := dom
		locDom.SpeedMin, locDom.SpeedMax = locationPhaseSpeed, locationPhaseSpeed
		locBest, err := o.runPhase(ctx, phaseLocation, locDom, b.LocationTrials)
		if err != nil {
			return Candidate{}, err
		}
		best = locBest
		o.logger.Info(ctx, "location phase done",
			logger.Float64("dx", best.DX), logger.Float64("dy", best.DY),
			logger.Float64("score", best.Score))
	}

	if b.VelocityTrials > 0 {
		velDom := dom.pinned(best.DX, best.DY, o.jitter)
		velDom.SpeedMin, velDom.SpeedMax = 0, b.MaxSpeed
		velDom.HeadingMin, velDom.HeadingMax = 0, 2*math.Pi
		velBest, err := o.runPhase(ctx, phaseVelocity, velDom, b.VelocityTrials)
		if err != nil {
			return Candidate{}, err
		}
		if velBest.Score > best.Score || b.LocationTrials == 0 {
			best = velBest
		}
		o.logger.Info(ctx, "velocity phase done",
			logger.Float64("speed", velBest.Speed), logger.Float64("heading", velBest.Heading),
			logger.Float64("score", velBest.Score))
	}

	metrics.UpdateBestScore(best.Score)
	return best, nil
}

func validateBudget(b Budget) error {
	if b.LocationTrials < 0 || b.VelocityTrials < 0 {
		return fmt.Errorf("%w: location=%d velocity=%d", ErrInvalidTrialBudget, b.LocationTrials, b.VelocityTrials)
	}
	if b.LocationTrials == 0 && b.VelocityTrials == 0 {
		return ErrNoOptimizationRequested
	}
	if b.SizeOfGrid <= 0 {
		return fmt.Errorf("%w: size of grid %g", ErrInvalidSearchDomain, b.SizeOfGrid)
	}
	if b.VelocityTrials > 0 && b.MaxSpeed < 0 {
		return fmt.Errorf("%w: max speed %g", ErrInvalidSearchDomain, b.MaxSpeed)
	}
	return nil
}

// runPhase draws, scores and records the phase's whole trial budget and
// returns the sampler's best candidate.
func (o *Optimizer) runPhase(ctx context.Context, phase string, dom Domain, trials int) (Candidate, error) {
	sampler := o.newSampler()

	candidates := make([]Candidate, trials)
	for i := range candidates {
		candidates[i] = sampler.Propose(dom)
	}

	if err := o.scoreAll(ctx, phase, candidates); err != nil {
		return Candidate{}, err
	}

	for _, c := range candidates {
		sampler.Record(c)
	}
	best, ok := sampler.Best()
	if !ok {
		return Candidate{}, fmt.Errorf("%w: no candidates scored", ErrInvalidSearchDomain)
	}
	return best, nil
}

// scoreAll evaluates candidates in place, optionally across workers. Each
// evaluation clones the baseline frame independently, so trials never share
// mutable state.
func (o *Optimizer) scoreAll(ctx context.Context, phase string, candidates []Candidate) error {
	if o.parallelism <= 1 {
		for i := range candidates {
			if err := o.score(ctx, phase, &candidates[i]); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	work := make(chan int)

	for w := 0; w < o.parallelism; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				if err := o.score(ctx, phase, &candidates[i]); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
				}
			}
		}()
	}
	for i := range candidates {
		work <- i
	}
	close(work)
	wg.Wait()

	return firstErr
}

// score runs one trial through the counterfactual engine.
func (o *Optimizer) score(ctx context.Context, phase string, c *Candidate) error {
	start := time.Now()
	vx, vy := c.Velocity()
	created, err := o.analysis.SpaceCreated(ctx, model.Location{
		DX: c.DX, DY: c.DY,
		OverrideVelocity: true, VX: vx, VY: vy,
	})
	if err != nil {
		return err
	}
	// SpaceCreated measures the gain of the player's ACTUAL state over the
	// trial state; the trial's own worth is its negation.
	c.Score = -created
	metrics.RecordTrial(phase, float64(time.Since(start).Milliseconds()))
	return nil
}
