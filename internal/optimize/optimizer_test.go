package optimize_test

import (
	"context"
	"math"
	"testing"

	"github.com/okian/counterspace/internal/app"
	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/domain/offside"
	"github.com/okian/counterspace/internal/domain/surfacegen"
	"github.com/okian/counterspace/internal/fixture"
	"github.com/okian/counterspace/internal/optimize"
	. "github.com/smartystreets/goconvey/convey"
)

func analysisForTest(t *testing.T, frame model.Frame) *app.Analysis {
	t.Helper()
	a, err := app.New(context.Background(), surfacegen.NewInMemoryModel(), frame,
		fixture.Event(model.TeamHome), model.PlayerRef{Team: model.TeamHome, ID: 5},
		app.WithGridCellsX(15))
	if err != nil {
		t.Fatalf("failed to build analysis: %v", err)
	}
	return a
}

func TestBudgetValidation(t *testing.T) {
	Convey("Given an optimizer over a valid analysis", t, func() {
		ctx := context.Background()
		o := optimize.New(analysisForTest(t, fixture.Match()))

		Convey("When both budgets are zero", func() {
			_, err := o.Run(ctx, optimize.Budget{SizeOfGrid: 20, MaxSpeed: 5})
			So(err, ShouldWrap, optimize.ErrNoOptimizationRequested)
		})

		Convey("When a budget is negative", func() {
			_, err := o.Run(ctx, optimize.Budget{LocationTrials: -1, SizeOfGrid: 20, MaxSpeed: 5})
			So(err, ShouldWrap, optimize.ErrInvalidTrialBudget)
		})

		Convey("When the grid size is non-positive", func() {
			_, err := o.Run(ctx, optimize.Budget{LocationTrials: 10, SizeOfGrid: 0, MaxSpeed: 5})
			So(err, ShouldWrap, optimize.ErrInvalidSearchDomain)
		})

		Convey("When max speed is negative for a velocity search", func() {
			_, err := o.Run(ctx, optimize.Budget{VelocityTrials: 10, SizeOfGrid: 20, MaxSpeed: -1})
			So(err, ShouldWrap, optimize.ErrInvalidSearchDomain)
		})
	})
}

func TestRunTwoPhases(t *testing.T) {
	Convey("Given the synthetic match and a seeded optimizer", t, func() {
		ctx := context.Background()
		a := analysisForTest(t, fixture.Match())
		o := optimize.New(a, optimize.WithSeed(7))

		Convey("When running both phases", func() {
			best, err := o.Run(ctx, optimize.Budget{
				LocationTrials: 40,
				VelocityTrials: 15,
				SizeOfGrid:     20,
				MaxSpeed:       5,
			})

			Convey("Then the best candidate stays within the search bounds", func() {
				So(err, ShouldBeNil)
				So(best.DX, ShouldBeBetweenOrEqual, -10, 10)
				So(best.DY, ShouldBeBetweenOrEqual, -10, 10)
				So(best.Speed, ShouldBeBetweenOrEqual, 0, 5)
				So(best.Heading, ShouldBeBetweenOrEqual, 0, 2*math.Pi)
				So(math.IsInf(best.Score, 0), ShouldBeFalse)
			})

			Convey("And the velocity conversion follows the polar convention", func() {
				vx, vy := best.Velocity()
				So(vx, ShouldAlmostEqual, best.Speed*math.Sin(best.Heading), 1e-12)
				So(vy, ShouldAlmostEqual, best.Speed*math.Cos(best.Heading), 1e-12)
			})

			Convey("And a rerun with the same seed is reproducible", func() {
				again, err2 := optimize.New(a, optimize.WithSeed(7)).Run(ctx, optimize.Budget{
					LocationTrials: 40,
					VelocityTrials: 15,
					SizeOfGrid:     20,
					MaxSpeed:       5,
				})
				So(err2, ShouldBeNil)
				So(again, ShouldResemble, best)
			})
		})

		Convey("When running the location phase only", func() {
			best, err := o.Run(ctx, optimize.Budget{LocationTrials: 25, SizeOfGrid: 20})

			Convey("Then the speed stays negligible", func() {
				So(err, ShouldBeNil)
				So(best.Speed, ShouldBeLessThan, 0.1)
			})
		})

		Convey("When running the velocity phase only", func() {
			best, err := o.Run(ctx, optimize.Budget{VelocityTrials: 25, SizeOfGrid: 20, MaxSpeed: 5})

			Convey("Then the displacement stays within the jitter window of the origin", func() {
				So(err, ShouldBeNil)
				So(math.Abs(best.DX), ShouldBeLessThanOrEqualTo, 0.5)
				So(math.Abs(best.DY), ShouldBeLessThanOrEqualTo, 0.5)
			})
		})
	})
}

func TestRunParallelTrials(t *testing.T) {
	Convey("Given an optimizer evaluating trials across workers", t, func() {
		ctx := context.Background()
		a := analysisForTest(t, fixture.Match())
		o := optimize.New(a, optimize.WithSeed(3), optimize.WithParallelism(4))

		Convey("When running the search", func() {
			best, err := o.Run(ctx, optimize.Budget{
				LocationTrials: 32,
				VelocityTrials: 8,
				SizeOfGrid:     20,
				MaxSpeed:       5,
			})

			Convey("Then it completes with an in-bounds candidate", func() {
				So(err, ShouldBeNil)
				So(best.DX, ShouldBeBetweenOrEqual, -10, 10)
				So(best.DY, ShouldBeBetweenOrEqual, -10, 10)
			})
		})
	})
}

func TestRunOffsideConstraint(t *testing.T) {
	Convey("Given fewer than two opponents on the pitch", t, func() {
		ctx := context.Background()
		frame := fixture.Match()
		for id := range frame.Away.Players {
			if id != 1 {
				frame.Away.Players[id] = model.Absent()
			}
		}
		o := optimize.New(analysisForTest(t, frame))

		Convey("When running the search", func() {
			_, err := o.Run(ctx, optimize.Budget{LocationTrials: 5, SizeOfGrid: 20})

			Convey("Then the offside error propagates unchanged", func() {
				So(err, ShouldWrap, offside.ErrInsufficientDefenders)
			})
		})
	})
}

// fixedSampler always proposes the domain's lower corner, proving the
// optimizer is agnostic to the sampling strategy.
type fixedSampler struct {
	best optimize.Candidate
	seen bool
}

func (f *fixedSampler) Propose(d optimize.Domain) optimize.Candidate {
	return optimize.Candidate{DX: d.DXMin, DY: d.DYMin, Speed: d.SpeedMin, Heading: d.HeadingMin}
}

func (f *fixedSampler) Record(c optimize.Candidate) {
	if !f.seen || c.Score > f.best.Score {
		f.best, f.seen = c, true
	}
}

func (f *fixedSampler) Best() (optimize.Candidate, bool) { return f.best, f.seen }

func TestCustomSamplerFactory(t *testing.T) {
	Convey("Given a custom sampling strategy", t, func() {
		ctx := context.Background()
		a := analysisForTest(t, fixture.Match())
		o := optimize.New(a, optimize.WithSamplerFactory(func() optimize.Sampler { return &fixedSampler{} }))

		Convey("When running the location phase", func() {
			best, err := o.Run(ctx, optimize.Budget{LocationTrials: 3, SizeOfGrid: 20})

			Convey("Then every trial came from the custom sampler", func() {
				So(err, ShouldBeNil)
				So(best.DX, ShouldAlmostEqual, -10)
				So(best.DY, ShouldAlmostEqual, -10)
			})
		})
	})
}
