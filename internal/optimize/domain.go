package optimize

import (
	"fmt"
	"math"

	"github.com/okian/counterspace/internal/domain/model"
)

// Domain is the bounded parameter space one trial is drawn from.
type Domain struct {
	DXMin, DXMax           float64
	DYMin, DYMax           float64
	SpeedMin, SpeedMax     float64
	HeadingMin, HeadingMax float64
}

// searchDomain builds the displacement domain for the location phase: a
// sizeOfGrid-sided square around the player's current position, clipped to
// the pitch and to the offside boundary on the attacking side.
func searchDomain(state model.PlayerState, dims model.FieldDimensions,
	attack model.AttackDirection, offsideX, sizeOfGrid float64) (Domain, error) {
	half := sizeOfGrid / 2

	dxMin := math.Max(-half, -dims.Length/2-state.X)
	dxMax := math.Min(half, dims.Length/2-state.X)
	if attack == model.AttackPositiveX {
		dxMax = math.Min(dxMax, offsideX-state.X)
	} else {
		dxMin = math.Max(dxMin, offsideX-state.X)
	}

	dyMin := math.Max(-half, -dims.Width/2-state.Y)
	dyMax := math.Min(half, dims.Width/2-state.Y)

	if dxMin >= dxMax || dyMin >= dyMax {
		return Domain{}, fmt.Errorf("%w: clipped to [%g, %g]x[%g, %g]",
			ErrInvalidSearchDomain, dxMin, dxMax, dyMin, dyMax)
	}

	return Domain{
		DXMin: dxMin, DXMax: dxMax,
		DYMin: dyMin, DYMax: dyMax,
	}, nil
}

// pinned narrows the displacement ranges to a jitter window around a point,
// staying inside the original domain.
func (d Domain) pinned(dx, dy, jitter float64) Domain {
	out := d
	out.DXMin = math.Max(d.DXMin, dx-jitter)
	out.DXMax = math.Min(d.DXMax, dx+jitter)
	out.DYMin = math.Max(d.DYMin, dy-jitter)
	out.DYMax = math.Min(d.DYMax, dy+jitter)
	// The pin point came from the domain itself, so the window stays valid;
	// collapse to the point if jitter is zero.
	if out.DXMin > out.DXMax {
		out.DXMin, out.DXMax = dx, dx
	}
	if out.DYMin > out.DYMax {
		out.DYMin, out.DYMax = dy, dy
	}
	return out
}
