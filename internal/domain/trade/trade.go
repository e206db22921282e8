// Package trade evaluates two-sided player trades against the live pool.
package trade

import (
	"math"

	"github.com/fftw/tradewizard/internal/domain/model"
	"github.com/fftw/tradewizard/internal/domain/valuation"
)

// Verdict thresholds on the absolute delta, in rest-of-season points.
// Bands are symmetric around zero.
const (
	fairThreshold   = 10.0
	bigWinThreshold = 30.0

	roundingFactor = 100
)

// Verdict strings returned in a TradeAnalysis.
const (
	VerdictFair        = "Fair trade for both sides."
	VerdictSlightEdgeA = "Slight edge for Team A."
	VerdictSlightEdgeB = "Slight edge for Team B."
	VerdictBigWinA     = "Big win for Team A."
	VerdictBigWinB     = "Big win for Team B."
)

// Analyzer values each side of a trade with a shared valuator.
type Analyzer struct {
	valuator valuation.Valuator
}

// New creates an Analyzer around the given valuator.
func New(v valuation.Valuator) *Analyzer {
	return &Analyzer{valuator: v}
}

// Analyze sums the rest-of-season value each side gives up and classifies
// the result from Team A's perspective:
//
//	delta_a = team_b_total - team_a_total
//
// i.e. the value arriving to Team A minus the value leaving it. Ids not
// present in the pool are skipped silently; a side with no resolvable ids
// totals zero.
func (a *Analyzer) Analyze(pool []model.Player, teamAIDs, teamBIDs []string) model.TradeAnalysis {
	index := make(map[string]model.Player, len(pool))
	for _, p := range pool {
		index[p.ID] = p
	}

	teamATotal := a.total(index, teamAIDs)
	teamBTotal := a.total(index, teamBIDs)
	deltaA := round2(teamBTotal - teamATotal)

	return model.TradeAnalysis{
		TeamATotal: teamATotal,
		TeamBTotal: teamBTotal,
		DeltaA:     deltaA,
		Verdict:    verdict(deltaA),
	}
}

func (a *Analyzer) total(index map[string]model.Player, ids []string) float64 {
	var sum float64
	for _, id := range ids {
		p, ok := index[id]
		if !ok {
			continue
		}
		sum += a.valuator.Score(p)
	}
	return round2(sum)
}

func verdict(deltaA float64) string {
	switch {
	case math.Abs(deltaA) < fairThreshold:
		return VerdictFair
	case deltaA >= bigWinThreshold:
		return VerdictBigWinA
	case deltaA >= fairThreshold:
		return VerdictSlightEdgeA
	case deltaA <= -bigWinThreshold:
		return VerdictBigWinB
	default:
		return VerdictSlightEdgeB
	}
}

func round2(v float64) float64 {
	return math.Round(v*roundingFactor) / roundingFactor
}
