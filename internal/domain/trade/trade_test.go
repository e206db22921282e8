package trade_test

import (
	"testing"

	"github.com/fftw/tradewizard/internal/domain/model"
	trade "github.com/fftw/tradewizard/internal/domain/trade"
	. "github.com/smartystreets/goconvey/convey"
)

// fppgValuator scores a player by its raw FPPG so side totals are easy to
// compute by hand.
type fppgValuator struct{}

func (fppgValuator) Score(p model.Player) float64 { return p.FPPG }

func testPool() []model.Player {
	return []model.Player{
		{ID: "a", Name: "Player A", Position: model.PositionWR, FPPG: 10},
		{ID: "b", Name: "Player B", Position: model.PositionRB, FPPG: 20},
		{ID: "c", Name: "Player C", Position: model.PositionQB, FPPG: 35},
		{ID: "d", Name: "Player D", Position: model.PositionTE, FPPG: 5},
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	Convey("Given an analyzer over a small pool", t, func() {
		analyzer := trade.New(fppgValuator{})
		pool := testPool()

		Convey("When both sides are empty", func() {
			result := analyzer.Analyze(pool, nil, nil)

			Convey("Then totals should be zero and the trade fair", func() {
				So(result.TeamATotal, ShouldEqual, 0)
				So(result.TeamBTotal, ShouldEqual, 0)
				So(result.DeltaA, ShouldEqual, 0)
				So(result.Verdict, ShouldEqual, trade.VerdictFair)
			})
		})

		Convey("When the delta lands inside the fair band", func() {
			result := analyzer.Analyze(pool, []string{"a"}, []string{"d"})

			Convey("Then the verdict should be fair", func() {
				So(result.DeltaA, ShouldEqual, -5)
				So(result.Verdict, ShouldEqual, trade.VerdictFair)
			})
		})

		Convey("When team A receives exactly the slight-edge threshold", func() {
			result := analyzer.Analyze(pool, []string{"a"}, []string{"b"})

			Convey("Then the verdict should favor team A", func() {
				So(result.TeamATotal, ShouldEqual, 10)
				So(result.TeamBTotal, ShouldEqual, 20)
				So(result.DeltaA, ShouldEqual, 10)
				So(result.Verdict, ShouldEqual, trade.VerdictSlightEdgeA)
			})
		})

		Convey("When team A gives up far more than it receives", func() {
			result := analyzer.Analyze(pool, []string{"c"}, []string{"d"})

			Convey("Then the verdict should be a big win for team B", func() {
				So(result.DeltaA, ShouldEqual, -30)
				So(result.Verdict, ShouldEqual, trade.VerdictBigWinB)
			})
		})

		Convey("When the sides are swapped", func() {
			forward := analyzer.Analyze(pool, []string{"a", "b"}, []string{"c"})
			mirrored := analyzer.Analyze(pool, []string{"c"}, []string{"a", "b"})

			Convey("Then totals should swap and the delta should negate", func() {
				So(mirrored.TeamATotal, ShouldEqual, forward.TeamBTotal)
				So(mirrored.TeamBTotal, ShouldEqual, forward.TeamATotal)
				So(mirrored.DeltaA, ShouldEqual, -forward.DeltaA)
			})
		})

		Convey("When a side contains ids missing from the pool", func() {
			result := analyzer.Analyze(pool, []string{"a", "ghost"}, []string{"nobody"})

			Convey("Then unknown ids should be skipped silently", func() {
				So(result.TeamATotal, ShouldEqual, 10)
				So(result.TeamBTotal, ShouldEqual, 0)
				So(result.DeltaA, ShouldEqual, -10)
			})
		})
	})
}
