// Package mutate produces perturbed copies of tracking frames. The input
// frame is never touched; every perturbation edits a fresh clone of the
// subject's team snapshot.
package mutate

import (
	"fmt"

	"github.com/okian/counterspace/internal/domain/model"
)

// Apply returns a copy of frame with the subject altered according to the
// scenario. Exactly one player changes; every other value is carried over
// unchanged.
func Apply(frame model.Frame, ref model.PlayerRef, sc model.Scenario) (model.Frame, error) {
	side := frame.Side(ref.Team)
	state, ok := side.Players[ref.ID]
	if !ok {
		return model.Frame{}, fmt.Errorf("%w: %s", ErrInvalidPlayerReference, ref)
	}

	edited := side.Clone()
	switch s := sc.(type) {
	case model.Movement:
		state.VX = s.VX
		state.VY = s.VY
	case model.Presence:
		state = model.Absent()
	case model.Location:
		state.X += s.DX
		state.Y += s.DY
		if s.OverrideVelocity {
			state.VX = s.VX
			state.VY = s.VY
		}
	default:
		return model.Frame{}, fmt.Errorf("%w: %T", model.ErrInvalidScenarioKind, sc)
	}
	edited.Players[ref.ID] = state

	return frame.WithSide(edited), nil
}
