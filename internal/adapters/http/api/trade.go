// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fftw/tradewizard/internal/domain/model"
)

// TradeDependencies defines the interface for trade analysis.
type TradeDependencies interface {
	AnalyzeTrade(ctx context.Context, teamAIDs, teamBIDs []string) (model.TradeAnalysis, error)
}

// TradeHandler handles trade analysis requests.
type TradeHandler struct {
	deps TradeDependencies
}

// NewTradeHandler creates a new trade handler.
func NewTradeHandler(deps TradeDependencies) *TradeHandler {
	return &TradeHandler{deps: deps}
}

// HandleAnalyzeTrade handles POST /trade/analyze requests. Ids absent
// from the pool are skipped, not errors; both sides may be empty.
func (h *TradeHandler) HandleAnalyzeTrade(w http.ResponseWriter, r *http.Request) {
	const op = "api.analyze_trade"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req tradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	analysis, err := h.deps.AnalyzeTrade(r.Context(), req.TeamA, req.TeamB)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}
