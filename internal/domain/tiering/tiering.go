// Package tiering ranks a player pool by rest-of-season value and assigns
// tier labels.
package tiering

import (
	"sort"

	"github.com/fftw/tradewizard/internal/domain/model"
	"github.com/fftw/tradewizard/internal/domain/valuation"
)

// Fixed-cutoff tier boundaries: roster-sized buckets for a 12-team league.
const (
	eliteCutoff   = 12
	starterCutoff = 24
)

// Percentile tier boundaries for the five-bucket policy.
const (
	sTierPct = 0.10
	aTierPct = 0.30
	bTierPct = 0.60
	cTierPct = 0.85
)

// Policy selects how tier labels are assigned to ranked results.
type Policy int

const (
	// PolicyFixedCutoff buckets by absolute rank: <12 elite, <24 starter,
	// the rest bench.
	PolicyFixedCutoff Policy = iota
	// PolicyPercentile buckets by rank percentile into five S..D labels.
	PolicyPercentile
)

// ParsePolicy maps a config string to a Policy. Unknown values report
// false.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "cutoff":
		return PolicyFixedCutoff, true
	case "percentile":
		return PolicyPercentile, true
	default:
		return 0, false
	}
}

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithPolicy selects the tiering policy.
func WithPolicy(p Policy) Option {
	return func(r *Ranker) {
		r.policy = p
	}
}

// Ranker scores, sorts and tiers players using a shared valuator.
type Ranker struct {
	valuator valuation.Valuator
	policy   Policy
}

// New creates a Ranker around the given valuator.
func New(v valuation.Valuator, opts ...Option) *Ranker {
	r := &Ranker{
		valuator: v,
		policy:   PolicyFixedCutoff,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank scores every candidate, sorts descending by score and assigns tier
// labels. Ties keep the input order (stable sort), and every input player
// appears exactly once in the result.
func (r *Ranker) Rank(players []model.Player) []model.ROSResult {
	results := make([]model.ROSResult, len(players))
	for i, p := range players {
		results[i] = model.ROSResult{
			Player:    p,
			ROSPoints: r.valuator.Score(p),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ROSPoints > results[j].ROSPoints
	})

	for i := range results {
		results[i].Tier = r.tier(i, len(results))
	}
	return results
}

func (r *Ranker) tier(index, total int) string {
	if r.policy == PolicyPercentile {
		return percentileTier(index, total)
	}
	return cutoffTier(index)
}

func cutoffTier(index int) string {
	switch {
	case index < eliteCutoff:
		return "Tier 1 (Elite)"
	case index < starterCutoff:
		return "Tier 2 (Starter)"
	default:
		return "Tier 3 (Bench)"
	}
}

func percentileTier(index, total int) string {
	if total == 0 {
		return "D"
	}
	pct := float64(index+1) / float64(total)
	switch {
	case pct <= sTierPct:
		return "S"
	case pct <= aTierPct:
		return "A"
	case pct <= bTierPct:
		return "B"
	case pct <= cTierPct:
		return "C"
	default:
		return "D"
	}
}
