package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/skillr/internal/config"
	"github.com/okian/skillr/pkg/skillr"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.Model(), convey.ShouldResemble, skillr.DefaultConfig())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SKILLR_LOG_LEVEL", "debug")
			_ = os.Setenv("SKILLR_BETA", "2.5")
			_ = os.Setenv("SKILLR_TAU", "0")
			_ = os.Setenv("SKILLR_P_DRAW", "0.25")
			_ = os.Setenv("SKILLR_ENTROPY_RATE", "0.05")
			_ = os.Setenv("SKILLR_VALIDATE", "false")
			_ = os.Setenv("SKILLR_METRICS_ENABLED", "false")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.Beta, convey.ShouldEqual, 2.5)
				convey.So(cfg.Tau, convey.ShouldEqual, 0.0)
				convey.So(cfg.PDraw, convey.ShouldEqual, 0.25)
				convey.So(cfg.EntropyRate, convey.ShouldEqual, 0.05)
				convey.So(cfg.Validate, convey.ShouldBeFalse)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
			})

			convey.Convey("And untouched keys should keep their defaults", func() {
				convey.So(cfg.Loc, convey.ShouldEqual, 25.0)
				convey.So(cfg.Scale, convey.ShouldEqual, 25.0/3.0)
			})
		})

		convey.Convey("When the model constants are inconsistent", func() {
			_ = os.Setenv("SKILLR_P_DRAW", "1.5")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should be rejected as invalid", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(errors.Is(err, skillr.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When a value cannot be decoded", func() {
			_ = os.Setenv("SKILLR_BETA", "wide")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should fail to load", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"SKILLR_LOG_LEVEL", "SKILLR_VALIDATE", "SKILLR_METRICS_ENABLED",
		"SKILLR_LOC", "SKILLR_SCALE", "SKILLR_BETA", "SKILLR_TAU",
		"SKILLR_P_DRAW", "SKILLR_ENTROPY_RATE",
	} {
		_ = os.Unsetenv(key)
	}
}
