package valuation_test

import (
	"testing"

	"github.com/fftw/tradewizard/internal/domain/model"
	valuation "github.com/fftw/tradewizard/internal/domain/valuation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEngine_BasicFormula(t *testing.T) {
	Convey("Given an engine with default weights", t, func() {
		engine := valuation.New()

		Convey("When scoring a wide receiver with a neutral schedule", func() {
			p := model.Player{
				ID:             "p1",
				Name:           "Justin Jefferson",
				Team:           "MIN",
				Position:       model.PositionWR,
				FPPG:           18.5,
				Usage:          0.30,
				SOS:            0.5,
				RemainingGames: 7,
			}

			Convey("Then it should boost the base projection by usage only", func() {
				// 18.5 * 7 * (1 + 0.03*3.0) * 1.0 = 141.155
				So(engine.Score(p), ShouldEqual, 141.16)
			})
		})

		Convey("When scoring a player with an easy remaining schedule", func() {
			p := model.Player{
				ID:             "p2",
				Name:           "Easy Schedule",
				Position:       model.PositionRB,
				FPPG:           18.5,
				Usage:          0.30,
				SOS:            0.45,
				RemainingGames: 7,
			}

			Convey("Then the schedule factor should nudge the score up", func() {
				// 129.5 * 1.09 * (1 + 0.10*0.05) = 141.860775
				So(engine.Score(p), ShouldEqual, 141.86)
			})
		})

		Convey("When scoring a player with no remaining games", func() {
			p := model.Player{
				ID:       "p3",
				Name:     "Season Over",
				Position: model.PositionTE,
				FPPG:     14.0,
				Usage:    0.25,
				SOS:      0.5,
			}

			Convey("Then the score should be zero", func() {
				So(engine.Score(p), ShouldEqual, 0)
			})
		})
	})

	Convey("Given an engine with custom weights", t, func() {
		Convey("When the usage weight is raised", func() {
			engine := valuation.New(valuation.WithUsageWeight(0.05))
			p := model.Player{
				FPPG:           18.5,
				Usage:          0.30,
				SOS:            0.5,
				RemainingGames: 7,
			}

			Convey("Then the usage boost should grow with the weight", func() {
				// 129.5 * (1 + 0.05*3.0) = 148.925
				So(engine.Score(p), ShouldEqual, 148.93)
			})
		})

		Convey("When a hostile schedule factor would drive the score negative", func() {
			engine := valuation.New(valuation.WithSOSWeight(25))
			p := model.Player{
				FPPG:           10,
				Usage:          0.5,
				SOS:            1.0,
				RemainingGames: 5,
			}

			Convey("Then the score should be floored at zero", func() {
				So(engine.Score(p), ShouldEqual, 0)
			})
		})

		Convey("When non-positive weights are supplied", func() {
			engine := valuation.New(
				valuation.WithUsageWeight(0),
				valuation.WithSOSWeight(-1),
			)
			p := model.Player{
				FPPG:           18.5,
				Usage:          0.30,
				SOS:            0.5,
				RemainingGames: 7,
			}

			Convey("Then the defaults should be kept", func() {
				So(engine.Score(p), ShouldEqual, 141.16)
			})
		})
	})
}

func TestEngine_EnhancedFormula(t *testing.T) {
	Convey("Given an engine using the enhanced formula", t, func() {
		engine := valuation.New(valuation.WithFormula(valuation.FormulaEnhanced))

		Convey("When banked and projected season points are both present", func() {
			p := model.Player{
				Usage:           0.6,
				SOS:             0.5,
				SeasonPoints:    100,
				ProjectedSeason: 250,
			}

			Convey("Then the base should be banked points plus remaining upside", func() {
				// (100 + 150) * (1 + 0.03*0.1) * 1.0 = 250.75
				So(engine.Score(p), ShouldEqual, 250.75)
			})
		})

		Convey("When the player already exceeded the full-season projection", func() {
			p := model.Player{
				Usage:           0.5,
				SOS:             0.5,
				SeasonPoints:    300,
				ProjectedSeason: 250,
			}

			Convey("Then the remaining upside should not go negative", func() {
				So(engine.Score(p), ShouldEqual, 300)
			})
		})

		Convey("When only a full-season projection is present", func() {
			p := model.Player{
				Usage:           0.5,
				SOS:             0.5,
				ProjectedSeason: 200,
			}

			Convey("Then it should be used as the base", func() {
				So(engine.Score(p), ShouldEqual, 200)
			})
		})

		Convey("When no richer stats are present", func() {
			p := model.Player{
				FPPG:           10,
				Usage:          0.5,
				SOS:            0.5,
				RemainingGames: 5,
			}

			Convey("Then it should fall back to the per-game projection", func() {
				So(engine.Score(p), ShouldEqual, 50)
			})
		})
	})
}
