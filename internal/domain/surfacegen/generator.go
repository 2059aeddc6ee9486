// Package surfacegen defines the contract for the external control-surface
// model and ships an in-memory stand-in implementation.
package surfacegen

import (
	"context"

	"github.com/okian/counterspace/internal/domain/model"
)

// Params is the opaque configuration consumed by a surface model. It is
// immutable for the lifetime of an analysis; implementations must not edit it.
type Params map[string]float64

// Clone returns a copy of the parameter set.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Generator produces an occupancy surface for the possessing team from a
// tracking frame. Implementations must be pure: deterministic for fixed
// inputs, no retained references to the frame.
type Generator interface {
	// Generate computes the control surface at the event's frame. Each cell
	// holds the possessing team's occupancy value; the defending team's
	// surface is the complement.
	Generate(ctx context.Context, event model.Event, frame model.Frame,
		params Params, dims model.FieldDimensions, nGridCellsX int) (*model.Surface, error)
}
