package dataset

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// Loader produces a full snapshot from some backing source.
type Loader interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// Store holds the current snapshot behind an atomic pointer. Readers always
// see a complete snapshot; Reload builds the replacement off to the side and
// swaps the reference only once the load fully succeeded.
type Store struct {
	loader Loader
	cur    atomic.Pointer[Snapshot]
	mu     sync.Mutex // serializes concurrent reloads
}

// NewStore creates a store around a loader. Call Reload before the first
// Snapshot to populate it.
func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Snapshot returns the current snapshot, or nil if never loaded.
func (s *Store) Snapshot() *Snapshot {
	return s.cur.Load()
}

// Reload loads a fresh snapshot and atomically replaces the current one.
// On failure the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot reload failed: %w", err)
	}

	s.cur.Store(snap)
	log.Info().
		Int("materials", len(snap.Materials())).
		Int("stock_levels", len(snap.StockLevels())).
		Int("movements", len(snap.StockMovements())).
		Msg("snapshot reloaded")

	return snap, nil
}
