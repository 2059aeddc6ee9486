package surfacegen

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/counterspace/internal/domain/model"
)

// Parameter keys understood by the in-memory model.
const (
	// ParamInfluenceRadius is the sigma (meters) of a player's Gaussian
	// influence around their projected position.
	ParamInfluenceRadius = "influence_radius"
	// ParamTimeHorizon is how far ahead (seconds) a player's velocity is
	// projected before measuring influence.
	ParamTimeHorizon = "time_horizon"
)

// Defaults for the in-memory model.
const (
	defaultInfluenceRadius = 10.0
	defaultTimeHorizon     = 0.7
	influenceEpsilon       = 1e-12
)

// DefaultParams returns the default parameter set for the in-memory model.
func DefaultParams() Params {
	return Params{
		ParamInfluenceRadius: defaultInfluenceRadius,
		ParamTimeHorizon:     defaultTimeHorizon,
	}
}

// Option applies a configuration option to the InMemoryModel.
type Option func(*InMemoryModel)

// WithValueWeighting biases cell values toward the possessing team's
// attacked goal, approximating a value-weighted (EPV-style) surface.
func WithValueWeighting(enabled bool) Option {
	return func(m *InMemoryModel) {
		m.valueWeighted = enabled
	}
}

// WithAttackDirections overrides the per-team attack directions used by
// value weighting. The default follows the normalized tracking convention:
// Home attacks toward decreasing x, Away toward increasing x.
func WithAttackDirections(dirs map[model.Team]model.AttackDirection) Option {
	return func(m *InMemoryModel) {
		if len(dirs) > 0 {
			m.attackDirs = dirs
		}
	}
}

// InMemoryModel implements Generator with a distance/velocity influence
// model. It stands in for the real spatiotemporal control model the same way
// an in-memory scorer stands in for an external ML service: deterministic,
// normalized output, no I/O.
type InMemoryModel struct {
	valueWeighted bool
	attackDirs    map[model.Team]model.AttackDirection
}

// NewInMemoryModel creates a new in-memory surface model.
func NewInMemoryModel(opts ...Option) *InMemoryModel {
	m := &InMemoryModel{
		attackDirs: map[model.Team]model.AttackDirection{
			model.TeamHome: model.AttackNegativeX,
			model.TeamAway: model.AttackPositiveX,
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Generate computes the possessing team's occupancy surface.
func (m *InMemoryModel) Generate(ctx context.Context, event model.Event, frame model.Frame,
	params Params, dims model.FieldDimensions, nGridCellsX int) (*model.Surface, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if nGridCellsX <= 0 {
		return nil, fmt.Errorf("%w: non-positive grid resolution %d", ErrGeneration, nGridCellsX)
	}
	radius, horizon, err := m.resolveParams(params)
	if err != nil {
		return nil, err
	}

	poss := frame.Side(event.Possession)
	opp := frame.Side(event.Possession.Opponent())

	surface := model.NewSurface(dims, nGridCellsX)
	for i, y := range surface.YGrid {
		for j, x := range surface.XGrid {
			ip := teamInfluence(poss, x, y, radius, horizon)
			io := teamInfluence(opp, x, y, radius, horizon)
			v := (ip + influenceEpsilon/2) / (ip + io + influenceEpsilon)
			if m.valueWeighted {
				v *= m.cellWeight(event.Possession, x, dims)
			}
			surface.Cells[i][j] = v
		}
	}
	return surface, nil
}

// resolveParams validates the opaque parameter set, falling back to defaults
// for absent keys.
func (m *InMemoryModel) resolveParams(params Params) (radius, horizon float64, err error) {
	radius = defaultInfluenceRadius
	horizon = defaultTimeHorizon
	if v, ok := params[ParamInfluenceRadius]; ok {
		if v <= 0 || math.IsNaN(v) {
			return 0, 0, fmt.Errorf("%w: %s must be positive, got %v", ErrGeneration, ParamInfluenceRadius, v)
		}
		radius = v
	}
	if v, ok := params[ParamTimeHorizon]; ok {
		if v < 0 || math.IsNaN(v) {
			return 0, 0, fmt.Errorf("%w: %s must be non-negative, got %v", ErrGeneration, ParamTimeHorizon, v)
		}
		horizon = v
	}
	return radius, horizon, nil
}

// teamInfluence sums the Gaussian influence of every on-pitch player of one
// team at a cell center, measured from each player's projected position.
func teamInfluence(snap model.TeamSnapshot, x, y, radius, horizon float64) float64 {
	var total float64
	for _, st := range snap.Players {
		if !st.OnPitch() {
			continue
		}
		px := st.X + st.VX*horizon
		py := st.Y + st.VY*horizon
		d2 := (x-px)*(x-px) + (y-py)*(y-py)
		total += math.Exp(-d2 / (2 * radius * radius))
	}
	return total
}

// cellWeight scales a cell toward the goal the possessing team attacks,
// between 0.1 at its own goal line and 1.0 at the opponent's.
func (m *InMemoryModel) cellWeight(possession model.Team, x float64, dims model.FieldDimensions) float64 {
	dir := m.attackDirs[possession]
	progress := (float64(dir)*x + dims.Length/2) / dims.Length
	return 0.1 + 0.9*progress
}
