// Package app provides the counterfactual analysis context: it orchestrates
// the snapshot mutator and the surface generator across the three scenario
// kinds and attributes the resulting surface differences.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/domain/mutate"
	"github.com/okian/counterspace/internal/domain/space"
	"github.com/okian/counterspace/internal/domain/surfacegen"
	"github.com/okian/counterspace/pkg/logger"
	"github.com/okian/counterspace/pkg/metrics"
)

// Default analysis configuration constants.
const (
	defaultGridCellsX = 50
)

// Analysis is a counterfactual analysis context for one (frame, event,
// subject) triple. The baseline surface is computed once at construction and
// shared read-only by every scenario evaluation; perturbations always operate
// on throwaway clones.
type Analysis struct {
	id      uuid.UUID
	frame   model.Frame
	event   model.Event
	subject model.PlayerRef
	attack  model.AttackDirection

	gen    surfacegen.Generator
	params surfacegen.Params
	dims   model.FieldDimensions
	gridX  int

	baseline *model.Surface

	logger logger.Logger
}

// New validates the inputs, computes the baseline surface and returns a
// ready analysis context. Validation happens before any surface computation.
func New(ctx context.Context, gen surfacegen.Generator, frame model.Frame,
	event model.Event, subject model.PlayerRef, opts ...Option) (*Analysis, error) {
	a := &Analysis{
		id:      uuid.New(),
		frame:   frame,
		event:   event,
		subject: subject,
		attack:  defaultAttackDirection(subject.Team),
		gen:     gen,
		params:  surfacegen.DefaultParams(),
		dims:    model.DefaultFieldDimensions(),
		gridX:   defaultGridCellsX,
		logger:  logger.Nop(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if err := a.validate(); err != nil {
		metrics.RecordValidationError()
		return nil, err
	}

	baseline, err := a.generate(ctx, a.frame)
	if err != nil {
		return nil, err
	}
	a.baseline = baseline

	metrics.RecordAnalysisContext()
	a.logger.Debug(ctx, "analysis context ready",
		logger.String("id", a.id.String()),
		logger.String("subject", a.subject.String()),
		logger.Int("event", a.event.ID),
	)
	return a, nil
}

// defaultAttackDirection follows the normalized tracking convention: Home
// attacks toward decreasing x, Away toward increasing x.
func defaultAttackDirection(t model.Team) model.AttackDirection {
	if t == model.TeamHome {
		return model.AttackNegativeX
	}
	return model.AttackPositiveX
}

// validate rejects bad team tags, unresolvable player references and players
// off the pitch at the event frame.
func (a *Analysis) validate() error {
	if a.gen == nil {
		return fmt.Errorf("%w: nil generator", surfacegen.ErrGeneration)
	}
	if !a.subject.Team.Valid() || !a.event.Possession.Valid() {
		return fmt.Errorf("%w: %v", model.ErrInvalidTeam, a.subject.Team)
	}
	if a.gridX <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGridResolution, a.gridX)
	}
	side := a.frame.Side(a.subject.Team)
	state, ok := side.Players[a.subject.ID]
	if !ok {
		return fmt.Errorf("%w: %s", mutate.ErrInvalidPlayerReference, a.subject)
	}
	if !state.OnPitch() {
		return fmt.Errorf("%w: %s at frame %d", ErrPlayerNotOnPitch, a.subject, a.event.StartFrame)
	}
	return nil
}

// generate invokes the surface model and records timing. Collaborator
// failures are propagated unchanged.
func (a *Analysis) generate(ctx context.Context, frame model.Frame) (*model.Surface, error) {
	start := time.Now()
	s, err := a.gen.Generate(ctx, a.event, frame, a.params, a.dims, a.gridX)
	if err != nil {
		metrics.RecordSurfaceError()
		return nil, fmt.Errorf("generate surface: %w", err)
	}
	metrics.RecordSurfaceGeneration(float64(time.Since(start).Milliseconds()))
	return s, nil
}

// Difference evaluates one counterfactual scenario and returns the delta
// surface: baseline minus the edited surface.
func (a *Analysis) Difference(ctx context.Context, sc model.Scenario) (*model.Surface, error) {
	if err := a.checkScenario(ctx, sc); err != nil {
		metrics.RecordValidationError()
		return nil, err
	}

	edited, err := mutate.Apply(a.frame, a.subject, sc)
	if err != nil {
		return nil, err
	}

	editedSurface, err := a.generate(ctx, edited)
	if err != nil {
		return nil, err
	}
	metrics.RecordScenarioEvaluation(sc.Kind().String())

	return a.baseline.Sub(editedSurface)
}

// checkScenario rejects unknown scenario payloads and emits the advisory
// warnings for implicitly-stationary replacements. Warnings never abort.
func (a *Analysis) checkScenario(ctx context.Context, sc model.Scenario) error {
	switch s := sc.(type) {
	case model.Movement:
		if s.VX == 0 && s.VY == 0 && !s.Stationary {
			a.logger.Warn(ctx, "movement scenario with all-zero replacement velocity; analysis will treat the player as stationary",
				logger.String("subject", a.subject.String()))
		}
	case model.Presence:
	case model.Location:
		if s.OverrideVelocity && s.VX == 0 && s.VY == 0 {
			a.logger.Warn(ctx, "location scenario overrides velocity with zero; analysis will assume the player is stationary at the new location",
				logger.String("subject", a.subject.String()))
		}
	default:
		return fmt.Errorf("%w: %T", model.ErrInvalidScenarioKind, sc)
	}
	return nil
}

// SpaceCreated evaluates a scenario and returns the signed space-created
// metric in square meters, oriented by possession.
func (a *Analysis) SpaceCreated(ctx context.Context, sc model.Scenario) (float64, error) {
	delta, err := a.Difference(ctx, sc)
	if err != nil {
		return 0, err
	}
	return space.Created(delta, a.dims, a.event.Possession, a.subject.Team), nil
}

// TeamSpace returns the square meters currently held by the subject's team
// on the cached baseline surface.
func (a *Analysis) TeamSpace() float64 {
	if a.subject.Team == a.event.Possession {
		return space.Total(a.baseline, a.dims)
	}
	return space.DefendingTotal(a.baseline, a.dims)
}

// PlayersOnPitch lists the subject team's players present at the event frame.
func (a *Analysis) PlayersOnPitch() []model.PlayerID {
	return a.frame.Side(a.subject.Team).OnPitch()
}

// ID returns the analysis run identifier.
func (a *Analysis) ID() uuid.UUID { return a.id }

// Baseline returns the cached baseline surface. Callers must treat it as
// read-only; it is shared by every scenario evaluation.
func (a *Analysis) Baseline() *model.Surface { return a.baseline }

// Event returns the analyzed event.
func (a *Analysis) Event() model.Event { return a.event }

// Subject returns the analyzed player reference.
func (a *Analysis) Subject() model.PlayerRef { return a.subject }

// SubjectState returns the subject's baseline position and velocity.
func (a *Analysis) SubjectState() model.PlayerState {
	return a.frame.Side(a.subject.Team).Players[a.subject.ID]
}

// Opponents returns a copy of the opposing team's snapshot at the event frame.
func (a *Analysis) Opponents() model.TeamSnapshot {
	return a.frame.Side(a.subject.Team.Opponent()).Clone()
}

// AttackDirection returns the subject team's direction of attack.
func (a *Analysis) AttackDirection() model.AttackDirection { return a.attack }

// FieldDimensions returns the pitch dimensions of this analysis.
func (a *Analysis) FieldDimensions() model.FieldDimensions { return a.dims }
