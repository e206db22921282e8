package repository_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/fftw/tradewizard/internal/adapters/repository"
	"github.com/fftw/tradewizard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func poolPlayers() []model.Player {
	return []model.Player{
		{ID: "p1", Name: "Justin Jefferson", Team: "MIN", Position: model.PositionWR, FPPG: 18.5},
		{ID: "p2", Name: "Christian McCaffrey", Team: "SF", Position: model.PositionRB, FPPG: 21.7},
		{ID: "p3", Name: "Josh Allen", Team: "BUF", Position: model.PositionQB, FPPG: 22.1},
		{ID: "p4", Name: "Ja'Marr Chase", Team: "CIN", Position: model.PositionWR, FPPG: 17.3},
	}
}

func TestNewPool(t *testing.T) {
	Convey("Given valid players", t, func() {
		source := poolPlayers()
		p, err := repository.NewPool(source)
		So(err, ShouldBeNil)

		Convey("Then the pool should be frozen against source mutation", func() {
			source[0].Name = "mutated"
			got, err := p.Get(context.Background(), "p1")
			So(err, ShouldBeNil)
			So(got.Name, ShouldEqual, "Justin Jefferson")
		})
	})

	Convey("Given a player violating the pool invariant", t, func() {
		players := poolPlayers()
		players[1].Name = ""

		Convey("Then pool construction should fail", func() {
			_, err := repository.NewPool(players)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, repository.ErrInvalidPlayer), ShouldBeTrue)
			So(errors.Is(err, model.ErrMissingName), ShouldBeTrue)
		})
	})

	Convey("Given duplicate player ids", t, func() {
		players := poolPlayers()
		players[3].ID = "p1"

		Convey("Then pool construction should fail", func() {
			_, err := repository.NewPool(players)
			So(errors.Is(err, repository.ErrInvalidPlayer), ShouldBeTrue)
		})
	})
}

func TestPool_Queries(t *testing.T) {
	ctx := context.Background()

	Convey("Given a frozen pool", t, func() {
		p, err := repository.NewPool(poolPlayers())
		So(err, ShouldBeNil)

		Convey("When listing everything", func() {
			all := p.All(ctx)

			Convey("Then insertion order should be kept", func() {
				So(len(all), ShouldEqual, 4)
				So(all[0].ID, ShouldEqual, "p1")
				So(all[3].ID, ShouldEqual, "p4")
			})

			Convey("And mutating the result should not affect the pool", func() {
				all[0].Name = "mutated"
				So(p.All(ctx)[0].Name, ShouldEqual, "Justin Jefferson")
			})
		})

		Convey("When filtering by position", func() {
			Convey("Then matches should be case-insensitive", func() {
				wrs := p.ByPosition(ctx, " wr ")
				So(len(wrs), ShouldEqual, 2)
				So(wrs[0].ID, ShouldEqual, "p1")
				So(wrs[1].ID, ShouldEqual, "p4")
			})

			Convey("And empty or ALL should return the full pool", func() {
				So(len(p.ByPosition(ctx, "")), ShouldEqual, 4)
				So(len(p.ByPosition(ctx, "all")), ShouldEqual, 4)
			})

			Convey("And a position with no players should return empty", func() {
				So(p.ByPosition(ctx, "TE"), ShouldBeEmpty)
			})
		})

		Convey("When looking up by id", func() {
			Convey("Then known ids should resolve", func() {
				got, err := p.Get(ctx, "p3")
				So(err, ShouldBeNil)
				So(got.Name, ShouldEqual, "Josh Allen")
			})

			Convey("And unknown ids should report ErrNotFound", func() {
				_, err := p.Get(ctx, "ghost")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When counting", func() {
			So(p.Count(ctx), ShouldEqual, 4)
		})
	})
}
