package config_test

import (
	"errors"
	"testing"

	"github.com/okian/betcast/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.SourceKind, convey.ShouldEqual, "http")
			convey.So(cfg.SheetID, convey.ShouldEqual, config.DefaultSheetID)
			convey.So(cfg.ProxyPrefix, convey.ShouldEqual, "https://corsproxy.io/?")
			convey.So(cfg.SampleWeeks, convey.ShouldEqual, 8)
			convey.So(cfg.SampleBetsPerWeek, convey.ShouldEqual, 5)
			convey.So(cfg.SampleWinProbability, convey.ShouldEqual, 0.55)
			convey.So(cfg.MetricsNamespace, convey.ShouldEqual, "betcast")
			convey.So(cfg.MetricsSubsystem, convey.ShouldEqual, "ingest")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then helpers derive typed values", func() {
			convey.So(cfg.DelimiterRune(), convey.ShouldEqual, ',')
			cfg.Delimiter = ";"
			convey.So(cfg.DelimiterRune(), convey.ShouldEqual, ';')
			cfg.CORSOrigins = " https://a.example , ,https://b.example"
			convey.So(cfg.Origins(), convey.ShouldResemble, []string{"https://a.example", "https://b.example"})
		})

		convey.Convey("Then metric buckets parse from a list", func() {
			b, err := cfg.HistogramBuckets()
			convey.So(err, convey.ShouldBeNil)
			convey.So(b, convey.ShouldBeNil)

			cfg.MetricsBuckets = "5, 50,500"
			b, err = cfg.HistogramBuckets()
			convey.So(err, convey.ShouldBeNil)
			convey.So(b, convey.ShouldResemble, []float64{5, 50, 500})

			for _, bad := range []string{"5,x", "50,5", "0,1"} {
				cfg.MetricsBuckets = bad
				_, err = cfg.HistogramBuckets()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			}
		})
	})
}
