// Package valuation computes rest-of-season scores from canonical players.
package valuation

import (
	"math"

	"github.com/fftw/tradewizard/internal/domain/model"
)

// Default scoring weights. Both are deliberately small so usage and
// schedule nudge the base projection rather than dominate it.
const (
	DefaultUsageWeight = 0.03
	DefaultSOSWeight   = 0.10

	// usageShareScale converts a 0-1 usage share into the signal the
	// basic formula was calibrated against.
	usageShareScale = 10

	// midpoint is the neutral center of the 0-1 usage and sos scales.
	midpoint = 0.5

	roundingFactor = 100
)

// Formula selects which valuation variant an Engine applies. A single
// Engine instance is shared by every caller so one convention is used for
// the whole pool; mixing variants across players is a correctness bug.
type Formula int

const (
	// FormulaBasic projects from fppg and remaining games only.
	FormulaBasic Formula = iota
	// FormulaEnhanced prefers season-to-date and full-season projections
	// when the provider supplies them.
	FormulaEnhanced
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithUsageWeight sets the usage weight. Non-positive values are ignored.
func WithUsageWeight(w float64) Option {
	return func(e *Engine) {
		if w > 0 {
			e.usageWeight = w
		}
	}
}

// WithSOSWeight sets the strength-of-schedule weight. Non-positive values
// are ignored.
func WithSOSWeight(w float64) Option {
	return func(e *Engine) {
		if w > 0 {
			e.sosWeight = w
		}
	}
}

// WithFormula selects the valuation variant.
func WithFormula(f Formula) Option {
	return func(e *Engine) {
		e.formula = f
	}
}

// Valuator computes a rest-of-season score for a player. Implementations
// must be deterministic and free of I/O so scores can be recomputed on
// every request.
type Valuator interface {
	Score(p model.Player) float64
}

// Engine is the pure rest-of-season valuator.
type Engine struct {
	usageWeight float64
	sosWeight   float64
	formula     Formula
}

// New creates an Engine with default weights and the basic formula.
func New(opts ...Option) *Engine {
	e := &Engine{
		usageWeight: DefaultUsageWeight,
		sosWeight:   DefaultSOSWeight,
		formula:     FormulaBasic,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Score returns the projected rest-of-season points for p, rounded to two
// decimal places and never negative.
func (e *Engine) Score(p model.Player) float64 {
	var score float64
	switch e.formula {
	case FormulaEnhanced:
		score = e.enhanced(p)
	default:
		score = e.basic(p)
	}
	return round2(math.Max(0, score))
}

// basic projects fppg over the remaining games, boosted by usage share
// and adjusted for schedule difficulty around the neutral midpoint.
func (e *Engine) basic(p model.Player) float64 {
	base := p.FPPG * float64(p.RemainingGames)
	usageFactor := 1 + e.usageWeight*(p.Usage*usageShareScale)
	sosFactor := 1 + e.sosWeight*(midpoint-p.SOS)
	return base * usageFactor * sosFactor
}

// enhanced prefers richer provider stats: points already banked plus the
// remaining projected upside, floored at zero so a player who already
// exceeded the full-season projection is not double counted.
func (e *Engine) enhanced(p model.Player) float64 {
	var base float64
	switch {
	case p.SeasonPoints > 0 && p.ProjectedSeason > 0:
		base = p.SeasonPoints + math.Max(p.ProjectedSeason-p.SeasonPoints, 0)
	case p.ProjectedSeason > 0:
		base = p.ProjectedSeason
	default:
		base = p.FPPG * math.Max(float64(p.RemainingGames), 0)
	}
	usageFactor := 1 + e.usageWeight*(p.Usage-midpoint)
	matchupFactor := 1 + e.sosWeight*(midpoint-p.SOS)
	return base * usageFactor * matchupFactor
}

func round2(v float64) float64 {
	return math.Round(v*roundingFactor) / roundingFactor
}
