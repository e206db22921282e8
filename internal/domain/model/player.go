// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"strings"
)

// Position classifies a player into one of the four rosterable slots the
// analyzer cares about. Kickers, defenses and anything else are excluded
// at ingestion.
type Position string

// Rosterable positions.
const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
)

// Sentinel errors for player validation.
var (
	ErrMissingID       = errors.New("player id must not be empty")
	ErrMissingName     = errors.New("player name must not be empty")
	ErrInvalidPosition = errors.New("position must be one of QB, RB, WR, TE")
)

// ParsePosition normalizes a free-form position string. The second return
// value is false for kicker/defense/unknown codes.
func ParsePosition(s string) (Position, bool) {
	switch Position(strings.ToUpper(strings.TrimSpace(s))) {
	case PositionQB:
		return PositionQB, true
	case PositionRB:
		return PositionRB, true
	case PositionWR:
		return PositionWR, true
	case PositionTE:
		return PositionTE, true
	default:
		return "", false
	}
}

// Player is the canonical record every provider adapter normalizes into.
//
// Scale conventions (fixed across all adapters in this module):
//   - Usage is a 0-1 share of the team's offensive opportunity.
//   - SOS is a 0-1 difficulty signal where 0.5 is neutral and lower
//     values mean a harder remaining schedule.
type Player struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Team     string   `json:"team"`
	Position Position `json:"position"`

	// FPPG is average fantasy points per game, used when richer stats
	// are unavailable.
	FPPG           float64 `json:"fppg"`
	Usage          float64 `json:"usage"`
	SOS            float64 `json:"sos"`
	RemainingGames int     `json:"remaining_games"`

	// Optional richer fields. Zero means "not provided".
	SeasonPoints    float64 `json:"season_points,omitempty"`
	ProjectedSeason float64 `json:"projected_season,omitempty"`
	WeekProjection  float64 `json:"week_projection,omitempty"`
	Matchup         string  `json:"matchup,omitempty"`
}

// Validate checks the pool invariant: non-empty id and name, and a
// position drawn from the fixed enumeration.
func (p Player) Validate() error {
	switch {
	case strings.TrimSpace(p.ID) == "":
		return ErrMissingID
	case strings.TrimSpace(p.Name) == "":
		return ErrMissingName
	}
	if _, ok := ParsePosition(string(p.Position)); !ok {
		return ErrInvalidPosition
	}
	return nil
}

// ROSResult wraps one player with a computed rest-of-season score and a
// tier label. Derived and ephemeral, recomputed on every ranking request.
type ROSResult struct {
	Player    Player  `json:"player"`
	ROSPoints float64 `json:"ros_points"`
	Tier      string  `json:"tier"`
}

// TradeAnalysis holds the two side totals, the signed delta from team A's
// perspective (value received minus value given) and a verdict string.
type TradeAnalysis struct {
	TeamATotal float64 `json:"team_a_total"`
	TeamBTotal float64 `json:"team_b_total"`
	DeltaA     float64 `json:"delta_a"`
	Verdict    string  `json:"verdict"`
}
