package config_test

import (
	"testing"

	"github.com/okian/counterspace/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
			convey.So(cfg.FieldLength, convey.ShouldEqual, 106.0)
			convey.So(cfg.FieldWidth, convey.ShouldEqual, 68.0)
			convey.So(cfg.GridCellsX, convey.ShouldEqual, 50)
			convey.So(cfg.LocationTrials, convey.ShouldEqual, 125)
			convey.So(cfg.VelocityTrials, convey.ShouldEqual, 30)
			convey.So(cfg.SizeOfGrid, convey.ShouldEqual, 20)
			convey.So(cfg.MaxSpeed, convey.ShouldEqual, 5)
			convey.So(cfg.Parallelism, convey.ShouldEqual, 1)
		})
	})
}
