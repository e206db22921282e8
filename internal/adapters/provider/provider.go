// Package provider fetches raw player data from one external source and
// normalizes it into canonical player records.
//
// Every adapter in this package emits the same scale conventions: usage is
// a 0-1 share of team opportunity and sos is a 0-1 difficulty signal with
// 0.5 neutral. The valuation engine's basic formula is calibrated against
// exactly these scales.
package provider

import (
	"context"

	"github.com/fftw/tradewizard/internal/domain/model"
)

// Stats counts per-record outcomes of one fetch+normalize pass. Skipped
// records are malformed individuals inside an otherwise good payload;
// filtered records are valid but not fantasy-relevant here.
type Stats struct {
	Fetched  int
	Skipped  int
	Filtered int
}

// Adapter is one interchangeable player data source. Players reports a
// hard failure (network, malformed payload, auth) as an error; the caller
// treats an error and an empty result identically.
type Adapter interface {
	// Name identifies the adapter in logs and metrics.
	Name() string

	// Players runs the full fetch+normalize+filter pipeline.
	Players(ctx context.Context) ([]model.Player, Stats, error)
}

// positionDefaults are heuristic valuation inputs used when a provider
// exposes identity but not projections. They keep the rest-of-season math
// stable for sources that only tell us who is rostered where.
type positionDefaults struct {
	fppg           float64
	usage          float64
	sos            float64
	remainingGames int
}

// defaultsFor returns per-position heuristics with a catch-all for
// anything outside the known enumeration.
func defaultsFor(pos model.Position) positionDefaults {
	switch pos {
	case model.PositionQB:
		return positionDefaults{fppg: 18.0, usage: 0.75, sos: 0.50, remainingGames: 5}
	case model.PositionRB:
		return positionDefaults{fppg: 14.0, usage: 0.70, sos: 0.50, remainingGames: 5}
	case model.PositionWR:
		return positionDefaults{fppg: 13.0, usage: 0.70, sos: 0.50, remainingGames: 5}
	case model.PositionTE:
		return positionDefaults{fppg: 10.0, usage: 0.65, sos: 0.50, remainingGames: 5}
	default:
		return positionDefaults{fppg: 10.0, usage: 0.60, sos: 0.50, remainingGames: 5}
	}
}
