package model

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidTeam         = errors.New("team must be \"Home\" or \"Away\"")
	ErrInvalidPlayerID     = errors.New("player id must be an integer or its string form")
	ErrInvalidScenarioKind = errors.New("scenario kind must be movement, presence or location")
	ErrShapeMismatch       = errors.New("surface shapes do not match")
)
