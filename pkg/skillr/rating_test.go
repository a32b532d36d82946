package skillr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/skillr/pkg/skillr"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRating_Defaults(t *testing.T) {
	Convey("Given the default rating", t, func() {
		r := skillr.DefaultRating()

		Convey("Then it should be the 25 ± 25/3 prior", func() {
			So(r.Location, ShouldEqual, 25.0)
			So(r.Scale, ShouldEqual, 25.0/3.0)
		})

		Convey("And it should match the default config prior", func() {
			So(skillr.DefaultConfig().Rating(), ShouldResemble, r)
		})

		Convey("And it should pass validation", func() {
			So(r.Validate(), ShouldBeNil)
		})
	})
}

func TestRating_Belief(t *testing.T) {
	Convey("Given a rating of 30 ± 5", t, func() {
		r := skillr.NewRating(30, 5)

		Convey("When reading it as a distribution", func() {
			d := r.Dist()

			Convey("Then it should be centred on the location", func() {
				So(d.Mean(), ShouldEqual, 30.0)
				So(d.StdDev(), ShouldEqual, 5.0)
			})
		})

		Convey("When taking the 95% interval", func() {
			lo, hi := r.Interval(0.95)

			Convey("Then it should span about 1.96 scales on each side", func() {
				So(lo, ShouldAlmostEqual, 30-1.959964*5, 1e-4)
				So(hi, ShouldAlmostEqual, 30+1.959964*5, 1e-4)
			})
		})

		Convey("When the interval level is out of range", func() {
			Convey("Then the bounds should be NaN instead of panicking", func() {
				for _, level := range []float64{1.5, -0.2, math.NaN()} {
					So(func() { r.Interval(level) }, ShouldNotPanic)
					lo, hi := r.Interval(level)
					So(math.IsNaN(lo), ShouldBeTrue)
					So(math.IsNaN(hi), ShouldBeTrue)
				}
			})
		})

		Convey("When the interval level is one", func() {
			lo, hi := r.Interval(1)

			Convey("Then it should cover the whole line", func() {
				So(math.IsInf(lo, -1), ShouldBeTrue)
				So(math.IsInf(hi, 1), ShouldBeTrue)
			})
		})

		Convey("When taking the conservative estimate", func() {
			Convey("Then it should subtract k scales", func() {
				So(r.Conservative(3), ShouldEqual, 15.0)
				So(r.Conservative(0), ShouldEqual, 30.0)
			})
		})
	})
}

func TestRating_Validate(t *testing.T) {
	Convey("Given ratings that break the preconditions", t, func() {
		cases := []struct {
			name   string
			rating skillr.Rating
		}{
			{"zero scale", skillr.NewRating(25, 0)},
			{"negative scale", skillr.NewRating(25, -1)},
			{"NaN scale", skillr.NewRating(25, math.NaN())},
			{"infinite location", skillr.NewRating(math.Inf(1), 1)},
		}

		for _, tc := range cases {
			Convey("Then "+tc.name+" should be rejected", func() {
				err := tc.rating.Validate()
				So(err, ShouldNotBeNil)
				So(errors.Is(err, skillr.ErrInvalidRating), ShouldBeTrue)
			})
		}
	})

	Convey("Given a rating with a negative location", t, func() {
		Convey("Then it should be accepted", func() {
			So(skillr.NewRating(-40, 2).Validate(), ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	Convey("Given the default config", t, func() {
		cfg := skillr.DefaultConfig()

		Convey("Then it should carry the documented constants", func() {
			So(cfg.Loc, ShouldEqual, 25.0)
			So(cfg.Scale, ShouldEqual, 25.0/3.0)
			So(cfg.Beta, ShouldEqual, 25.0/6.0)
			So(cfg.Tau, ShouldEqual, 25.0/300.0)
			So(cfg.PDraw, ShouldEqual, 0.1)
			So(cfg.EntropyRate, ShouldEqual, 0.1)
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("When tau and p_draw are zero", func() {
			cfg.Tau = 0
			cfg.PDraw = 0

			Convey("Then it should still be valid", func() {
				So(cfg.Validate(), ShouldBeNil)
			})
		})

		Convey("When beta is zero", func() {
			cfg.Beta = 0
			Convey("Then it should be rejected", func() {
				So(errors.Is(cfg.Validate(), skillr.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When p_draw reaches one", func() {
			cfg.PDraw = 1
			Convey("Then it should be rejected", func() {
				So(errors.Is(cfg.Validate(), skillr.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When tau is negative", func() {
			cfg.Tau = -0.1
			Convey("Then it should be rejected", func() {
				So(errors.Is(cfg.Validate(), skillr.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When entropy_rate is negative", func() {
			cfg.EntropyRate = -1
			Convey("Then it should be rejected", func() {
				So(errors.Is(cfg.Validate(), skillr.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When a constant is NaN", func() {
			cfg.Loc = math.NaN()
			Convey("Then it should be rejected", func() {
				err := cfg.Validate()
				So(errors.Is(err, skillr.ErrInvalidConfig), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "loc")
			})
		})
	})
}
