// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/fftw/tradewizard/internal/domain/model"
)

// PlayersDependencies defines the interface for pool listing.
type PlayersDependencies interface {
	ListPlayers(ctx context.Context, position string) ([]model.Player, error)
}

// PlayersHandler handles player pool requests.
type PlayersHandler struct {
	deps PlayersDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayersDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleGetPlayers handles GET /players?position=QB requests. An absent
// or "ALL" position returns the full pool.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	players, err := h.deps.ListPlayers(r.Context(), r.URL.Query().Get("position"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, players)
}
