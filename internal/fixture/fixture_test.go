package fixture_test

import (
	"testing"

	"github.com/okian/counterspace/internal/domain/model"
	"github.com/okian/counterspace/internal/fixture"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatch(t *testing.T) {
	Convey("Given the synthetic match frame", t, func() {
		frame := fixture.Match()

		Convey("Then both teams field eleven players on the pitch", func() {
			So(len(frame.Home.Players), ShouldEqual, 11)
			So(len(frame.Away.Players), ShouldEqual, 11)
			So(len(frame.Home.OnPitch()), ShouldEqual, 11)
			So(len(frame.Away.OnPitch()), ShouldEqual, 11)
		})

		Convey("And the away side mirrors the home side", func() {
			for id, h := range frame.Home.Players {
				a := frame.Away.Players[id]
				So(a.X, ShouldAlmostEqual, -h.X)
				So(a.Y, ShouldAlmostEqual, -h.Y)
				So(a.VX, ShouldAlmostEqual, -h.VX)
				So(a.VY, ShouldAlmostEqual, -h.VY)
			}
		})

		Convey("And every call returns the identical frame", func() {
			So(fixture.Match(), ShouldResemble, frame)
		})
	})
}

func TestEvent(t *testing.T) {
	Convey("Given a synthetic event", t, func() {
		ev := fixture.Event(model.TeamAway)

		Convey("Then it carries the requested possession", func() {
			So(ev.Possession, ShouldEqual, model.TeamAway)
			So(ev.StartFrame, ShouldEqual, 100)
		})
	})
}
