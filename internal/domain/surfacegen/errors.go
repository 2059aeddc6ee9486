package surfacegen

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrGeneration = errors.New("surface generation failed")
)
