package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fftw/tradewizard/internal/domain/model"
	"github.com/fftw/tradewizard/pkg/logger"
)

// Sleeper public API defaults. The players endpoint needs no credentials.
const (
	sleeperDefaultBaseURL = "https://api.sleeper.app/v1"
	sleeperDefaultTimeout = 15 * time.Second

	// sleeperUnrankedSentinel is the search_rank Sleeper assigns to
	// players nobody is picking up.
	sleeperUnrankedSentinel = 9_999_999
)

// sleeperPlayer mirrors the subset of the /players/nfl payload we read.
// The endpoint returns a JSON object keyed by player id.
type sleeperPlayer struct {
	PlayerID   string `json:"player_id"`
	FullName   string `json:"full_name"`
	Position   string `json:"position"`
	Team       string `json:"team"`
	Active     bool   `json:"active"`
	SearchRank int    `json:"search_rank"`
}

// SleeperOption applies a configuration option to the Sleeper adapter.
type SleeperOption func(*Sleeper)

// WithSleeperMaxPlayers caps how many search-ranked players are kept.
func WithSleeperMaxPlayers(n int) SleeperOption {
	return func(a *Sleeper) {
		if n > 0 {
			a.maxPlayers = n
		}
	}
}

// WithSleeperBaseURL overrides the API base URL. Used by tests.
func WithSleeperBaseURL(base string) SleeperOption {
	return func(a *Sleeper) {
		if base != "" {
			a.baseURL = base
		}
	}
}

// WithSleeperHTTPClient overrides the HTTP client.
func WithSleeperHTTPClient(c *http.Client) SleeperOption {
	return func(a *Sleeper) {
		if c != nil {
			a.client = c
		}
	}
}

// Sleeper pulls the NFL player dictionary from the Sleeper public API.
//
// Scale conventions: Sleeper exposes no ownership percentage, so the
// relevance filter keeps the top maxPlayers by search_rank (Sleeper's own
// popularity ordering; lower is more relevant). Valuation inputs come
// from the position-keyed heuristic defaults (usage 0-1 share, sos 0-1
// neutral), the same scales every adapter here emits.
type Sleeper struct {
	client     *http.Client
	baseURL    string
	maxPlayers int
	log        logger.Logger
}

// NewSleeper creates a Sleeper adapter.
func NewSleeper(opts ...SleeperOption) *Sleeper {
	a := &Sleeper{
		client:     &http.Client{Timeout: sleeperDefaultTimeout},
		baseURL:    sleeperDefaultBaseURL,
		maxPlayers: 400,
		log:        logger.Get().Named("sleeper"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name identifies the adapter in logs and metrics.
func (a *Sleeper) Name() string { return "sleeper" }

// Players fetches the raw player dictionary and normalizes it. Records
// that fail normalization are skipped individually.
func (a *Sleeper) Players(ctx context.Context) ([]model.Player, Stats, error) {
	raw, err := a.fetchRaw(ctx)
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Fetched: len(raw)}
	players := make([]model.Player, 0, a.maxPlayers)
	for id, item := range raw {
		p, ok := a.normalize(id, item, &stats)
		if !ok {
			continue
		}
		players = append(players, p)
	}

	if len(players) == 0 {
		return nil, stats, fmt.Errorf("%w: 0 usable players after filtering", ErrEmptyResult)
	}

	a.log.Info(ctx, "loaded players from Sleeper",
		logger.Int("fetched", stats.Fetched),
		logger.Int("usable", len(players)),
		logger.Int("skipped", stats.Skipped),
		logger.Int("filtered", stats.Filtered),
	)
	return players, stats, nil
}

func (a *Sleeper) fetchRaw(ctx context.Context) (map[string]sleeperPlayer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/players/nfl", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

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

	var raw map[string]sleeperPlayer
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object keyed by player id: %w", ErrMalformedPayload, err)
	}
	return raw, nil
}

func (a *Sleeper) normalize(id string, item sleeperPlayer, stats *Stats) (model.Player, bool) {
	pos, ok := model.ParsePosition(item.Position)
	if !ok {
		stats.Filtered++
		return model.Player{}, false
	}

	if item.FullName == "" || id == "" {
		stats.Skipped++
		return model.Player{}, false
	}

	// Relevance: inactive players and anyone outside Sleeper's top
	// search ranks is noise for trade purposes.
	if !item.Active || item.SearchRank <= 0 ||
		item.SearchRank >= sleeperUnrankedSentinel || item.SearchRank > a.maxPlayers {
		stats.Filtered++
		return model.Player{}, false
	}

	team := item.Team
	if team == "" {
		team = "FA"
	}

	defaults := defaultsFor(pos)
	return model.Player{
		ID:             id,
		Name:           item.FullName,
		Team:           team,
		Position:       pos,
		FPPG:           defaults.fppg,
		Usage:          defaults.usage,
		SOS:            defaults.sos,
		RemainingGames: defaults.remainingGames,
	}, true
}
