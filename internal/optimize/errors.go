package optimize

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNoOptimizationRequested = errors.New("both trial budgets are zero")
	ErrInvalidTrialBudget      = errors.New("trial budgets must be non-negative")
	ErrInvalidSearchDomain     = errors.New("search domain is empty")
)
