// Package repository holds the process-wide player pool.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fftw/tradewizard/internal/domain/model"
)

// Pool provides read access to the player pool. The pool is built once at
// startup and never mutated afterwards, so concurrent reads need no
// locking.
type Pool interface {
	// All returns every player in the pool in stable insertion order.
	All(ctx context.Context) []model.Player

	// ByPosition returns players matching the position filter,
	// case-insensitively. Empty string and "ALL" return the full pool.
	ByPosition(ctx context.Context, position string) []model.Player

	// Get returns the player with the given id.
	// Returns ErrNotFound for unknown ids.
	Get(ctx context.Context, id string) (model.Player, error)

	// Count returns the number of players in the pool.
	Count(ctx context.Context) int
}

// allFilter is the position value that disables filtering.
const allFilter = "ALL"

// inMemoryPool is the only Pool implementation: a frozen slice plus an
// id index.
type inMemoryPool struct {
	players []model.Player
	byID    map[string]model.Player
}

// NewPool freezes the given players into an immutable pool. Players that
// violate the pool invariant (empty id or name, position outside the
// enumeration) are rejected so downstream code never re-validates.
func NewPool(players []model.Player) (Pool, error) {
	frozen := make([]model.Player, len(players))
	copy(frozen, players)

	byID := make(map[string]model.Player, len(frozen))
	for _, p := range frozen {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: player %q: %w", ErrInvalidPlayer, p.ID, err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidPlayer, p.ID)
		}
		byID[p.ID] = p
	}

	return &inMemoryPool{players: frozen, byID: byID}, nil
}

func (s *inMemoryPool) All(_ context.Context) []model.Player {
	out := make([]model.Player, len(s.players))
	copy(out, s.players)
	return out
}

func (s *inMemoryPool) ByPosition(ctx context.Context, position string) []model.Player {
	position = strings.ToUpper(strings.TrimSpace(position))
	if position == "" || position == allFilter {
		return s.All(ctx)
	}

	out := make([]model.Player, 0, len(s.players))
	for _, p := range s.players {
		if string(p.Position) == position {
			out = append(out, p)
		}
	}
	return out
}

func (s *inMemoryPool) Get(_ context.Context, id string) (model.Player, error) {
	p, ok := s.byID[id]
	if !ok {
		return model.Player{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, nil
}

func (s *inMemoryPool) Count(_ context.Context) int {
	return len(s.players)
}
