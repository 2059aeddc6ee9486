package app

import (
	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/domain/surfacegen"
	"github.com/okian/counterspace/pkg/logger"
)

// Option applies a configuration option to the Analysis.
type Option func(*Analysis)

// WithFieldDimensions sets the pitch dimensions.
func WithFieldDimensions(dims model.FieldDimensions) Option {
	return func(a *Analysis) {
		if dims.Length > 0 && dims.Width > 0 {
			a.dims = dims
		}
	}
}

// WithGridCellsX sets the grid resolution in the x direction. The y
// resolution is derived from the pitch aspect ratio.
func WithGridCellsX(n int) Option {
	return func(a *Analysis) {
		a.gridX = n
	}
}

// WithParams sets the opaque surface model parameters. The set is copied and
// immutable for the lifetime of the analysis.
func WithParams(p surfacegen.Params) Option {
	return func(a *Analysis) {
		if p != nil {
			a.params = p.Clone()
		}
	}
}

// WithAttackDirection overrides the subject team's direction of attack.
func WithAttackDirection(dir model.AttackDirection) Option {
	return func(a *Analysis) {
		if dir == model.AttackPositiveX || dir == model.AttackNegativeX {
			a.attack = dir
		}
	}
}

// WithLogger sets a custom logger for the analysis.
func WithLogger(l logger.Logger) Option {
	return func(a *Analysis) {
		if l != nil {
			a.logger = l
		}
	}
}
