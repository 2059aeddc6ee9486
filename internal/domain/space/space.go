// Package space integrates control surfaces into scalar square-meter values
// and orients them by possession.
//
// Total is a Riemann-sum approximation of the double integral of the surface
// over the pitch; precision scales with grid resolution.
package space

import (
	"github.com/okian/counterspace/internal/domain/model"
)

// Total returns the pitch area attributed by the surface to the team the
// model was generated for, in square meters:
//
//	area * sum(cells) / cellCount
func Total(s *model.Surface, dims model.FieldDimensions) float64 {
	return dims.Area() * s.Sum() / float64(s.CellCount())
}

// DefendingTotal returns the area held by the team the surface was NOT
// generated for. Control values are complementary (1 - p per cell), so the
// defending side's area is the pitch area minus the attacking total.
//
// Never apply this to a difference surface: differences are already signed.
func DefendingTotal(s *model.Surface, dims model.FieldDimensions) float64 {
	return dims.Area() - Total(s, dims)
}

// Created turns a difference surface (baseline minus counterfactual) into the
// signed space-created metric for the subject.
//
// A positive raw total means the subject's actual state yields more surface
// value than the counterfactual. When the subject's team is out of
// possession the surface measures the opponent's control, so the sign flips:
// a positive raw total in that frame is space the subject's team conceded.
func Created(delta *model.Surface, dims model.FieldDimensions, possession, subject model.Team) float64 {
	total := Total(delta, dims)
	if subject == possession {
		return total
	}
	return -total
}
