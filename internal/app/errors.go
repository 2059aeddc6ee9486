package app

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrPlayerNotOnPitch      = errors.New("player not on pitch at the event frame")
	ErrInvalidGridResolution = errors.New("grid resolution must be positive")
)
