package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fftw/tradewizard/internal/domain/model"
	"github.com/fftw/tradewizard/pkg/logger"
)

// ESPN Fantasy v3 defaults. The players_wl view returns the league-wide
// player list the espn-fantasy-football-api JS client wraps.
const (
	espnDefaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"
	espnDefaultTimeout = 15 * time.Second

	// ESPN defaultPositionId codes (community-documented).
	espnPosQB  = 1
	espnPosRB  = 2
	espnPosWR  = 3
	espnPosTE  = 4
	espnPosK   = 5
	espnPosDST = 16
)

// espnPlayer mirrors the subset of the players_wl payload we read.
type espnPlayer struct {
	ID                int64          `json:"id"`
	FullName          string         `json:"fullName"`
	DefaultPositionID int            `json:"defaultPositionId"`
	ProTeamID         *int           `json:"proTeamId"`
	Ownership         *espnOwnership `json:"ownership"`
}

type espnOwnership struct {
	PercentOwned float64 `json:"percentOwned"`
}

// ESPNOption applies a configuration option to the ESPN adapter.
type ESPNOption func(*ESPN)

// WithSeason sets the season year requested from the API.
func WithSeason(year int) ESPNOption {
	return func(a *ESPN) {
		if year > 0 {
			a.season = year
		}
	}
}

// WithScoringPeriod sets the scoring period id; 0 requests the full pool.
func WithScoringPeriod(period int) ESPNOption {
	return func(a *ESPN) {
		if period >= 0 {
			a.scoringPeriod = period
		}
	}
}

// WithMaxPlayers caps how many players the X-Fantasy-Filter requests.
func WithMaxPlayers(n int) ESPNOption {
	return func(a *ESPN) {
		if n > 0 {
			a.maxPlayers = n
		}
	}
}

// WithMinPercentOwned sets the relevance threshold. Players owned in
// fewer leagues than this percentage are filtered out. Zero disables.
func WithMinPercentOwned(pct float64) ESPNOption {
	return func(a *ESPN) {
		if pct >= 0 {
			a.minPercentOwned = pct
		}
	}
}

// WithCredentials sets the optional espn_s2/SWID cookies for private
// league access.
func WithCredentials(s2, swid string) ESPNOption {
	return func(a *ESPN) {
		a.espnS2 = s2
		a.swid = swid
	}
}

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(base string) ESPNOption {
	return func(a *ESPN) {
		if base != "" {
			a.baseURL = base
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) ESPNOption {
	return func(a *ESPN) {
		if c != nil {
			a.client = c
		}
	}
}

// ESPN pulls the league-wide player list from the ESPN Fantasy API and
// normalizes it into canonical players.
//
// Scale conventions: ESPN's players_wl view carries identity and
// ownership but no projections, so valuation inputs come from the
// position-keyed heuristic defaults (usage 0-1 share, sos 0-1 neutral).
type ESPN struct {
	client          *http.Client
	baseURL         string
	season          int
	scoringPeriod   int
	maxPlayers      int
	minPercentOwned float64
	espnS2          string
	swid            string
	log             logger.Logger
}

// NewESPN creates an ESPN adapter with test-friendly defaults.
func NewESPN(opts ...ESPNOption) *ESPN {
	a := &ESPN{
		client:          &http.Client{Timeout: espnDefaultTimeout},
		baseURL:         espnDefaultBaseURL,
		season:          2025,
		scoringPeriod:   0,
		maxPlayers:      400,
		minPercentOwned: 20.0,
		log:             logger.Get().Named("espn"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the adapter in logs and metrics.
func (a *ESPN) Name() string { return "espn" }

// Players fetches the raw player list and normalizes it. Per-record
// failures are skipped and counted; a payload that is not a JSON list or
// yields zero usable players is reported as an error.
func (a *ESPN) Players(ctx context.Context) ([]model.Player, Stats, error) {
	raw, err := a.fetchRaw(ctx)
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Fetched: len(raw)}
	players := make([]model.Player, 0, len(raw))
	for _, item := range raw {
		p, ok := a.normalize(item, &stats)
		if !ok {
			continue
		}
		players = append(players, p)
	}

	if len(players) == 0 {
		return nil, stats, fmt.Errorf("%w: 0 usable players after filtering", ErrEmptyResult)
	}

	a.log.Info(ctx, "loaded players from ESPN",
		logger.Int("fetched", stats.Fetched),
		logger.Int("usable", len(players)),
		logger.Int("skipped", stats.Skipped),
		logger.Int("filtered", stats.Filtered),
	)
	return players, stats, nil
}

// fetchRaw calls the players endpoint with an X-Fantasy-Filter header
// that raises the page limit and restricts to active players.
func (a *ESPN) fetchRaw(ctx context.Context) ([]espnPlayer, error) {
	endpoint := fmt.Sprintf("%s/seasons/%d/players", a.baseURL, a.season)

	q := url.Values{}
	q.Set("view", "players_wl")
	q.Set("scoringPeriodId", strconv.Itoa(a.scoringPeriod))

	fantasyFilter := map[string]any{
		"players":      map[string]any{"limit": a.maxPlayers},
		"filterActive": map[string]any{"value": true},
	}
	filterJSON, err := json.Marshal(fantasyFilter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Fantasy-Filter", string(filterJSON))
	if a.espnS2 != "" {
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: a.espnS2})
	}
	if a.swid != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: a.swid})
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	var raw []espnPlayer
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON list of players: %w", ErrMalformedPayload, err)
	}
	return raw, nil
}

// normalize maps one raw record to a canonical player. It reports false
// when the record is skipped (malformed) or filtered (not rosterable,
// below the ownership threshold).
func (a *ESPN) normalize(item espnPlayer, stats *Stats) (model.Player, bool) {
	pos, ok := mapESPNPosition(item.DefaultPositionID)
	if !ok {
		// K/DST/unknown are out of scope for the analyzer.
		stats.Filtered++
		return model.Player{}, false
	}

	if item.FullName == "" || item.ID == 0 {
		stats.Skipped++
		return model.Player{}, false
	}

	var percentOwned float64
	if item.Ownership != nil {
		percentOwned = item.Ownership.PercentOwned
	}
	if a.minPercentOwned > 0 && percentOwned < a.minPercentOwned {
		stats.Filtered++
		return model.Player{}, false
	}

	defaults := defaultsFor(pos)
	return model.Player{
		ID:             strconv.FormatInt(item.ID, 10),
		Name:           item.FullName,
		Team:           espnTeamAbbrev(item.ProTeamID),
		Position:       pos,
		FPPG:           defaults.fppg,
		Usage:          defaults.usage,
		SOS:            defaults.sos,
		RemainingGames: defaults.remainingGames,
	}, true
}

// mapESPNPosition maps defaultPositionId to the fixed enumeration. K and
// DST map to nothing on purpose.
func mapESPNPosition(posID int) (model.Position, bool) {
	switch posID {
	case espnPosQB:
		return model.PositionQB, true
	case espnPosRB:
		return model.PositionRB, true
	case espnPosWR:
		return model.PositionWR, true
	case espnPosTE:
		return model.PositionTE, true
	case espnPosK, espnPosDST:
		return "", false
	default:
		return "", false
	}
}
