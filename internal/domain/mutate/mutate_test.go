package mutate_test

import (
	"testing"

	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/domain/mutate"
	. "github.com/smartystreets/goconvey/convey"
)

func frameForTest() model.Frame {
	return model.Frame{
		Home: model.TeamSnapshot{
			Team: model.TeamHome,
			Players: map[model.PlayerID]model.PlayerState{
				5: {X: 0, Y: 0, VX: 2, VY: 0},
				6: {X: 10, Y: -4, VX: -1, VY: 1},
			},
		},
		Away: model.TeamSnapshot{
			Team: model.TeamAway,
			Players: map[model.PlayerID]model.PlayerState{
				19: {X: -8, Y: 3, VX: 0.5, VY: -0.5},
			},
		},
	}
}

func TestApplyMovement(t *testing.T) {
	Convey("Given a frame and a movement scenario", t, func() {
		frame := frameForTest()
		ref := model.PlayerRef{Team: model.TeamHome, ID: 5}

		Convey("When replacing the subject's velocity", func() {
			out, err := mutate.Apply(frame, ref, model.Movement{VX: 0, VY: 3, Stationary: false})

			Convey("Then only the velocity changes", func() {
				So(err, ShouldBeNil)
				got := out.Home.Players[5]
				So(got.X, ShouldAlmostEqual, 0)
				So(got.Y, ShouldAlmostEqual, 0)
				So(got.VX, ShouldAlmostEqual, 0)
				So(got.VY, ShouldAlmostEqual, 3)
			})

			Convey("And the original frame is untouched", func() {
				So(frame.Home.Players[5].VY, ShouldAlmostEqual, 0)
			})

			Convey("And every other player is carried over unchanged", func() {
				So(out.Home.Players[6], ShouldResemble, frame.Home.Players[6])
				So(out.Away.Players[19], ShouldResemble, frame.Away.Players[19])
			})
		})
	})
}

func TestApplyPresence(t *testing.T) {
	Convey("Given a frame and a presence scenario", t, func() {
		frame := frameForTest()
		ref := model.PlayerRef{Team: model.TeamAway, ID: 19}

		Convey("When removing the subject", func() {
			out, err := mutate.Apply(frame, ref, model.Presence{})

			Convey("Then the subject is absent in the copy only", func() {
				So(err, ShouldBeNil)
				So(out.Away.Players[19].OnPitch(), ShouldBeFalse)
				So(frame.Away.Players[19].OnPitch(), ShouldBeTrue)
			})
		})
	})
}

func TestApplyLocation(t *testing.T) {
	Convey("Given a frame and a location scenario", t, func() {
		frame := frameForTest()
		ref := model.PlayerRef{Team: model.TeamHome, ID: 6}

		Convey("When displacing without a velocity override", func() {
			out, err := mutate.Apply(frame, ref, model.Location{DX: -3, DY: 7})

			Convey("Then the position shifts and the velocity is retained", func() {
				So(err, ShouldBeNil)
				got := out.Home.Players[6]
				So(got.X, ShouldAlmostEqual, 7)
				So(got.Y, ShouldAlmostEqual, 3)
				So(got.VX, ShouldAlmostEqual, -1)
				So(got.VY, ShouldAlmostEqual, 1)
			})
		})

		Convey("When displacing with a velocity override", func() {
			out, err := mutate.Apply(frame, ref, model.Location{
				DX: 1, DY: 1, OverrideVelocity: true, VX: 0, VY: 0,
			})

			Convey("Then both position and velocity change", func() {
				So(err, ShouldBeNil)
				got := out.Home.Players[6]
				So(got.X, ShouldAlmostEqual, 11)
				So(got.Y, ShouldAlmostEqual, -3)
				So(got.VX, ShouldAlmostEqual, 0)
				So(got.VY, ShouldAlmostEqual, 0)
			})
		})
	})
}

func TestApplyUnknownPlayer(t *testing.T) {
	Convey("Given a reference that does not resolve", t, func() {
		frame := frameForTest()
		ref := model.PlayerRef{Team: model.TeamHome, ID: 99}

		Convey("When applying any scenario", func() {
			_, err := mutate.Apply(frame, ref, model.Presence{})

			Convey("Then it should fail with ErrInvalidPlayerReference", func() {
				So(err, ShouldWrap, mutate.ErrInvalidPlayerReference)
			})
		})
	})
}
