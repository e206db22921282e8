package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/fftw/tradewizard/internal/config"
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
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.Provider, convey.ShouldEqual, config.ProviderESPN)
				convey.So(cfg.MaxPlayers, convey.ShouldEqual, 400)
				convey.So(cfg.MinPercentOwned, convey.ShouldEqual, 20.0)
				convey.So(cfg.TierPolicy, convey.ShouldEqual, "cutoff")
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			yamlContent := `
addr: ":9090"
provider: "sleeper"
season: 2024
max_players: 250
tier_policy: "percentile"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FFTW_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.Provider, convey.ShouldEqual, config.ProviderSleeper)
				convey.So(cfg.Season, convey.ShouldEqual, 2024)
				convey.So(cfg.MaxPlayers, convey.ShouldEqual, 250)
				convey.So(cfg.TierPolicy, convey.ShouldEqual, "percentile")
				// Untouched fields keep their defaults
				convey.So(cfg.MinPercentOwned, convey.ShouldEqual, 20.0)
				convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 15_000)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
provider: "sleeper"
max_players: 250
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("FFTW_CONFIG", tmpFile)
			_ = os.Setenv("FFTW_ADDR", ":8080")
			_ = os.Setenv("FFTW_PROVIDER", "static")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")               // Overridden by env
				convey.So(cfg.Provider, convey.ShouldEqual, "static")          // Overridden by env
				convey.So(cfg.MaxPlayers, convey.ShouldEqual, 250)             // From file
				convey.So(cfg.MinPercentOwned, convey.ShouldEqual, 20.0)       // From defaults
			})
		})

		convey.Convey("When loading config with numeric environment variables", func() {
			_ = os.Setenv("FFTW_SEASON", "2024")
			_ = os.Setenv("FFTW_SCORING_PERIOD", "6")
			_ = os.Setenv("FFTW_MAX_PLAYERS", "150")
			_ = os.Setenv("FFTW_MIN_PERCENT_OWNED", "5.5")
			_ = os.Setenv("FFTW_USAGE_WEIGHT", "0.05")
			_ = os.Setenv("FFTW_FETCH_TIMEOUT_MS", "5000")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should parse numeric values correctly", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Season, convey.ShouldEqual, 2024)
				convey.So(cfg.ScoringPeriod, convey.ShouldEqual, 6)
				convey.So(cfg.MaxPlayers, convey.ShouldEqual, 150)
				convey.So(cfg.MinPercentOwned, convey.ShouldEqual, 5.5)
				convey.So(cfg.UsageWeight, convey.ShouldEqual, 0.05)
				convey.So(cfg.FetchTimeoutMS, convey.ShouldEqual, 5000)
			})
		})

		convey.Convey("When loading config with credentials from the environment", func() {
			_ = os.Setenv("FFTW_ESPN_S2", "s2-token")
			_ = os.Setenv("FFTW_ESPN_SWID", "{swid}")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the cookies should be picked up", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.ESPNS2, convey.ShouldEqual, "s2-token")
				convey.So(cfg.ESPNSWID, convey.ShouldEqual, "{swid}")
			})
		})

		convey.Convey("When loading config with a non-existent file", func() {
			_ = os.Setenv("FFTW_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown provider", func() {
			_ = os.Setenv("FFTW_PROVIDER", "yahoo")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "unknown provider")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown tier policy", func() {
			_ = os.Setenv("FFTW_TIER_POLICY", "zscore")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("FFTW_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative weight", func() {
			_ = os.Setenv("FFTW_SOS_WEIGHT", "-0.1")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a non-positive fetch timeout", func() {
			_ = os.Setenv("FFTW_FETCH_TIMEOUT_MS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// clearConfigEnvVars removes every FFTW_ variable the tests touch.
func clearConfigEnvVars() {
	for _, key := range []string{
		"FFTW_CONFIG",
		"FFTW_LOG_LEVEL",
		"FFTW_ADDR",
		"FFTW_PROVIDER",
		"FFTW_SEASON",
		"FFTW_SCORING_PERIOD",
		"FFTW_MAX_PLAYERS",
		"FFTW_MIN_PERCENT_OWNED",
		"FFTW_ESPN_S2",
		"FFTW_ESPN_SWID",
		"FFTW_FETCH_TIMEOUT_MS",
		"FFTW_USAGE_WEIGHT",
		"FFTW_SOS_WEIGHT",
		"FFTW_TIER_POLICY",
	} {
		_ = os.Unsetenv(key)
	}
}

// createTempConfigFile writes YAML content to a temp file and returns its path.
func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "fftw-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	_ = tmpFile.Close()
	return tmpFile.Name()
}
