// Package model contains domain models passed between layers: tracking
// snapshots, events, player references and control surfaces.
package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Team identifies one of the two sides in a match.
type Team int

// The two valid team tags.
const (
	TeamHome Team = iota
	TeamAway
)

// String returns the canonical team tag.
func (t Team) String() string {
	switch t {
	case TeamHome:
		return "Home"
	case TeamAway:
		return "Away"
	default:
		return fmt.Sprintf("Team(%d)", int(t))
	}
}

// Valid reports whether the team tag is one of the two known sides.
func (t Team) Valid() bool {
	return t == TeamHome || t == TeamAway
}

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamHome {
		return TeamAway
	}
	return TeamHome
}

// ParseTeam parses one of the two literal team tags.
func ParseTeam(s string) (Team, error) {
	switch s {
	case "Home":
		return TeamHome, nil
	case "Away":
		return TeamAway, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTeam, s)
	}
}

// PlayerID identifies a player within a team's snapshot.
type PlayerID int

// String returns the decimal form of the id.
func (id PlayerID) String() string { return strconv.Itoa(int(id)) }

// ParsePlayerID accepts a player identifier as a small integer or its
// string form.
func ParsePlayerID(v interface{}) (PlayerID, error) {
	switch x := v.(type) {
	case int:
		return PlayerID(x), nil
	case PlayerID:
		return x, nil
	case string:
		n, err := strconv.Atoi(x)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPlayerID, x)
		}
		return PlayerID(n), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidPlayerID, v)
	}
}

// PlayerRef identifies the subject of an analysis.
type PlayerRef struct {
	Team Team
	ID   PlayerID
}

// String returns e.g. "Home 5".
func (r PlayerRef) String() string {
	return r.Team.String() + " " + r.ID.String()
}

// PlayerState holds one player's position and velocity at a single frame.
// NaN in every field marks a player who is not on the pitch.
type PlayerState struct {
	X  float64
	Y  float64
	VX float64
	VY float64
}

// OnPitch reports whether the player is on the pitch at this frame.
// Presence is keyed off the velocity column, matching the tracking
// provider's convention for substituted players.
func (p PlayerState) OnPitch() bool {
	return !math.IsNaN(p.VX)
}

// Absent returns a state marking a player as off the pitch.
func Absent() PlayerState {
	nan := math.NaN()
	return PlayerState{X: nan, Y: nan, VX: nan, VY: nan}
}

// TeamSnapshot is one team's half of a tracking frame.
type TeamSnapshot struct {
	Team    Team
	Players map[PlayerID]PlayerState
}

// Clone returns a deep copy of the snapshot. Mutations of the copy never
// reach the original.
func (s TeamSnapshot) Clone() TeamSnapshot {
	players := make(map[PlayerID]PlayerState, len(s.Players))
	for id, st := range s.Players {
		players[id] = st
	}
	return TeamSnapshot{Team: s.Team, Players: players}
}

// OnPitch returns the ids of all players present at this frame, ascending.
func (s TeamSnapshot) OnPitch() []PlayerID {
	ids := make([]PlayerID, 0, len(s.Players))
	for id, st := range s.Players {
		if st.OnPitch() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Frame is an immutable row of positions and velocities for both teams at
// one time index.
type Frame struct {
	Home TeamSnapshot
	Away TeamSnapshot
}

// Side returns the snapshot for the given team.
func (f Frame) Side(t Team) TeamSnapshot {
	if t == TeamHome {
		return f.Home
	}
	return f.Away
}

// Clone returns a deep copy of both team snapshots.
func (f Frame) Clone() Frame {
	return Frame{Home: f.Home.Clone(), Away: f.Away.Clone()}
}

// WithSide returns a copy of the frame with one side replaced.
func (f Frame) WithSide(s TeamSnapshot) Frame {
	if s.Team == TeamHome {
		return Frame{Home: s, Away: f.Away}
	}
	return Frame{Home: f.Home, Away: s}
}

// Event identifies the analyzed instant: a start frame and the team
// currently in possession.
type Event struct {
	ID         int
	StartFrame int
	Possession Team
}

// AttackDirection is the direction of attack of a team along the x axis.
type AttackDirection int

// Attack directions along x.
const (
	AttackPositiveX AttackDirection = 1
	AttackNegativeX AttackDirection = -1
)

// FieldDimensions holds the pitch length and width in meters.
type FieldDimensions struct {
	Length float64
	Width  float64
}

// DefaultFieldDimensions returns the standard 106x68m pitch.
func DefaultFieldDimensions() FieldDimensions {
	return FieldDimensions{Length: 106.0, Width: 68.0}
}

// Area returns the total pitch area in square meters.
func (d FieldDimensions) Area() float64 {
	return d.Length * d.Width
}
