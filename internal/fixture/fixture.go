// Package fixture builds deterministic synthetic tracking frames. The demo
// runner and the package tests share these instead of real provider data.
package fixture

import (
	"github.com/okian/counterspace/internal/domain/model"
)

// Formation columns (meters from the halfway line) for a 4-4-2 setup on the
// defended half. Home defends the +x goal, Away mirrors on the -x side.
var (
	formationX = []float64{50, 30, 30, 30, 30, 15, 15, 15, 15, 2, 2}
	formationY = []float64{0, -20, -7, 7, 20, -18, -6, 6, 18, -8, 8}
)

// Base speed (m/s) every player moves toward the attacked goal at; a small
// per-player spread keeps the frame asymmetric.
const (
	baseSpeed    = 1.0
	speedSpread  = 0.05
	lateralDrift = 0.3
)

// Match returns an 11v11 frame with both teams in a 4-4-2, every player on
// the pitch and moving toward the goal they attack. Identical on every call.
func Match() model.Frame {
	home := model.TeamSnapshot{Team: model.TeamHome, Players: make(map[model.PlayerID]model.PlayerState, 11)}
	away := model.TeamSnapshot{Team: model.TeamAway, Players: make(map[model.PlayerID]model.PlayerState, 11)}

	for i := range formationX {
		id := model.PlayerID(i + 1)
		speed := baseSpeed + speedSpread*float64(i)
		drift := lateralDrift * float64(i%3-1)

		// Home attacks toward decreasing x.
		home.Players[id] = model.PlayerState{
			X:  formationX[i],
			Y:  formationY[i],
			VX: -speed,
			VY: drift,
		}
		// Away mirrors and attacks toward increasing x.
		away.Players[id] = model.PlayerState{
			X:  -formationX[i],
			Y:  -formationY[i],
			VX: speed,
			VY: -drift,
		}
	}

	return model.Frame{Home: home, Away: away}
}

// Event returns a synthetic event at frame 100 with the given possession.
func Event(possession model.Team) model.Event {
	return model.Event{ID: 820, StartFrame: 100, Possession: possession}
}
