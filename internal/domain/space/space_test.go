package space_test

import (
	"math/rand"
	"testing"

	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/domain/space"
	. "github.com/smartystreets/goconvey/convey"
)

func randomSurface(rng *rand.Rand, dims model.FieldDimensions, nx int) *model.Surface {
	s := model.NewSurface(dims, nx)
	for i := range s.Cells {
		for j := range s.Cells[i] {
			s.Cells[i][j] = rng.Float64()
		}
	}
	return s
}

func TestTotal(t *testing.T) {
	Convey("Given a surface with known cell values", t, func() {
		dims := model.DefaultFieldDimensions()
		s := model.NewSurface(dims, 50)

		Convey("When every cell is 1", func() {
			for i := range s.Cells {
				for j := range s.Cells[i] {
					s.Cells[i][j] = 1
				}
			}

			Convey("Then the total equals the pitch area", func() {
				So(space.Total(s, dims), ShouldAlmostEqual, dims.Area(), 1e-6)
			})

			Convey("And the defending total is zero", func() {
				So(space.DefendingTotal(s, dims), ShouldAlmostEqual, 0, 1e-6)
			})
		})

		Convey("When every cell is 0.5", func() {
			for i := range s.Cells {
				for j := range s.Cells[i] {
					s.Cells[i][j] = 0.5
				}
			}

			Convey("Then both sides split the pitch", func() {
				So(space.Total(s, dims), ShouldAlmostEqual, dims.Area()/2, 1e-6)
				So(space.DefendingTotal(s, dims), ShouldAlmostEqual, dims.Area()/2, 1e-6)
			})
		})

		Convey("And a valid control surface can never exceed the pitch area", func() {
			rng := rand.New(rand.NewSource(1))
			for trial := 0; trial < 50; trial++ {
				r := randomSurface(rng, dims, 20)
				So(space.Total(r, dims), ShouldBeLessThanOrEqualTo, dims.Area()+1e-9)
			}
		})
	})
}

func TestAggregatorLinearity(t *testing.T) {
	Convey("Given two same-shaped surfaces", t, func() {
		dims := model.DefaultFieldDimensions()
		rng := rand.New(rand.NewSource(7))
		a := randomSurface(rng, dims, 25)
		b := randomSurface(rng, dims, 25)

		Convey("When aggregating their difference", func() {
			d, err := a.Sub(b)
			So(err, ShouldBeNil)

			Convey("Then aggregate(a) - aggregate(b) == aggregate(a-b)", func() {
				So(space.Total(d, dims), ShouldAlmostEqual,
					space.Total(a, dims)-space.Total(b, dims), 1e-9)
			})
		})
	})
}

func TestCreatedSignSymmetry(t *testing.T) {
	Convey("Given a difference surface", t, func() {
		dims := model.DefaultFieldDimensions()
		rng := rand.New(rand.NewSource(11))
		a := randomSurface(rng, dims, 25)
		b := randomSurface(rng, dims, 25)
		delta, err := a.Sub(b)
		So(err, ShouldBeNil)

		Convey("When the subject's team has possession", func() {
			inPossession := space.Created(delta, dims, model.TeamHome, model.TeamHome)

			Convey("Then the metric equals the raw aggregate", func() {
				So(inPossession, ShouldAlmostEqual, space.Total(delta, dims), 1e-9)
			})

			Convey("And the out-of-possession metric is its exact negation", func() {
				outOfPossession := space.Created(delta, dims, model.TeamHome, model.TeamAway)
				So(outOfPossession, ShouldAlmostEqual, -inPossession, 1e-9)
			})
		})
	})
}
