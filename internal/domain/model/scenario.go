package model

import "fmt"

// ScenarioKind is the closed set of counterfactual perturbations.
type ScenarioKind int

// The three scenario kinds.
const (
	KindMovement ScenarioKind = iota
	KindPresence
	KindLocation
)

// String returns the literal scenario tag accepted at the validation surface.
func (k ScenarioKind) String() string {
	switch k {
	case KindMovement:
		return "movement"
	case KindPresence:
		return "presence"
	case KindLocation:
		return "location"
	default:
		return fmt.Sprintf("ScenarioKind(%d)", int(k))
	}
}

// ParseScenarioKind parses one of the three literal scenario tags.
func ParseScenarioKind(s string) (ScenarioKind, error) {
	switch s {
	case "movement":
		return KindMovement, nil
	case "presence":
		return KindPresence, nil
	case "location":
		return KindLocation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidScenarioKind, s)
	}
}

// Scenario is a tagged perturbation payload. The set of implementations is
// closed; dispatch is by exhaustive type switch.
type Scenario interface {
	Kind() ScenarioKind
	sealed()
}

// Movement replaces the subject's velocity vector; position is unchanged.
type Movement struct {
	VX float64
	VY float64
	// Stationary states explicitly that an all-zero replacement velocity is
	// intended. Without it a zero vector draws an advisory warning.
	Stationary bool
}

// Kind returns KindMovement.
func (Movement) Kind() ScenarioKind { return KindMovement }
func (Movement) sealed()            {}

// Presence removes the subject from the pitch entirely.
type Presence struct{}

// Kind returns KindPresence.
func (Presence) Kind() ScenarioKind { return KindPresence }
func (Presence) sealed()            {}

// Location displaces the subject by (DX, DY). The current velocity is
// retained unless OverrideVelocity is set.
type Location struct {
	DX float64
	DY float64

	OverrideVelocity bool
	VX               float64
	VY               float64
}

// Kind returns KindLocation.
func (Location) Kind() ScenarioKind { return KindLocation }
func (Location) sealed()            {}
