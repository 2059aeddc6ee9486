// Package offside derives the x-coordinate bound that constrains where a
// player may be relocated, from the opposing team's positions.
package offside

import (
	"fmt"
	"sort"

	"github.com/okian/counterspace/internal/domain/model"
)

const minDefenders = 2

// Line returns the offside boundary for a team attacking in the given
// direction: the x-coordinate of the second-most-advanced opposing player on
// the pitch (the last-but-one defender).
func Line(opponents model.TeamSnapshot, attack model.AttackDirection) (float64, error) {
	xs := make([]float64, 0, len(opponents.Players))
	for _, st := range opponents.Players {
		if st.OnPitch() {
			xs = append(xs, st.X)
		}
	}
	if len(xs) < minDefenders {
		return 0, fmt.Errorf("%w: %d on pitch", ErrInsufficientDefenders, len(xs))
	}

	sort.Float64s(xs)
	if attack == model.AttackNegativeX {
		return xs[1], nil
	}
	return xs[len(xs)-2], nil
}
