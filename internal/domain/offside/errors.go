package offside

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInsufficientDefenders = errors.New("fewer than two opposing players on pitch")
)
