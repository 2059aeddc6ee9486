package mutate

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidPlayerReference = errors.New("player reference does not resolve in snapshot")
)
