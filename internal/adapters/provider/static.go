package provider

import (
	"context"

	"github.com/fftw/tradewizard/internal/domain/model"
)

// Static serves the built-in default pool. It is both a configurable
// provider choice (offline development) and the shape the loader falls
// back to when a real provider fails.
type Static struct{}

// NewStatic creates a Static adapter.
func NewStatic() *Static { return &Static{} }

// Name identifies the adapter in logs and metrics.
func (a *Static) Name() string { return "static" }

// Players returns the default pool. It never fails.
func (a *Static) Players(_ context.Context) ([]model.Player, Stats, error) {
	players := model.DefaultPlayers()
	return players, Stats{Fetched: len(players)}, nil
}
