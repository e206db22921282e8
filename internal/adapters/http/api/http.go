// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fftw/tradewizard/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// ListPlayers returns the pool, optionally filtered by position.
	ListPlayers(ctx context.Context, position string) ([]model.Player, error)

	// Rankings returns rest-of-season results sorted by score descending.
	Rankings(ctx context.Context, position string) ([]model.ROSResult, error)

	// AnalyzeTrade values both sides of a trade against the live pool.
	AnalyzeTrade(ctx context.Context, teamAIDs, teamBIDs []string) (model.TradeAnalysis, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	playersHandler  *PlayersHandler
	rankingsHandler *RankingsHandler
	tradeHandler    *TradeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		playersHandler:  NewPlayersHandler(deps),
		rankingsHandler: NewRankingsHandler(deps),
		tradeHandler:    NewTradeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", Instrument(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", Instrument(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/players", Instrument(s.playersHandler.HandleGetPlayers, "players"))
	mux.HandleFunc("/rankings/ros", Instrument(s.rankingsHandler.HandleGetRankings, "rankings_ros"))
	mux.HandleFunc("/trade/analyze", Instrument(s.tradeHandler.HandleAnalyzeTrade, "trade_analyze"))
}

// tradeRequest mirrors the request schema for POST /trade/analyze. Each
// side lists the player ids that team gives up.
type tradeRequest struct {
	TeamA []string `json:"team_a"`
	TeamB []string `json:"team_b"`
}

func (t tradeRequest) validate() error {
	if t.TeamA == nil && t.TeamB == nil {
		return errors.New("missing team_a and team_b")
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
