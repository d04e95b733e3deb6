package store

import (
	"context"
	"sync"

	"github.com/prabhatsn1/trameapp/internal/ingest/entity"
	"github.com/prabhatsn1/trameapp/internal/pkg/pkgerror"
)

// InMemoryStore holds the single page-level snapshot: at most one table at a
// time, an optional error message, and the latest issued ingestion token.
//
// Results are applied only when their token is still the latest issued, which
// is what keeps a slow stale ingestion from overwriting newer state.
type InMemoryStore struct {
	mu      sync.RWMutex
	latest  int64
	snap    entity.Snapshot
	touched bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Begin records seq as the latest issued ingestion token.
func (s *InMemoryStore) Begin(ctx context.Context, seq int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq > s.latest {
		s.latest = seq
	}

	return nil
}

// Replace installs a new table, file name, and a cleared error, if seq is
// still the latest issued token. It reports whether the result was applied.
func (s *InMemoryStore) Replace(ctx context.Context, seq int64, table entity.Table, fileName string, loadedAt int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.latest {
		return false, nil
	}

	s.snap = entity.Snapshot{
		Table:    &table,
		FileName: fileName,
		Seq:      seq,
		LoadedAt: loadedAt,
	}
	s.touched = true

	return true, nil
}

// SetError records an error message without touching the current table or
// file name, if seq is still the latest issued token.
func (s *InMemoryStore) SetError(ctx context.Context, seq int64, msg string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.latest {
		return false, nil
	}

	s.snap.Err = msg
	s.snap.Seq = seq
	s.touched = true

	return true, nil
}

// Current returns the snapshot, or pkgerror.ErrNotFound when nothing has been
// ingested (or errored) since the last clear.
func (s *InMemoryStore) Current(ctx context.Context) (entity.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.touched {
		return entity.Snapshot{}, pkgerror.ErrNotFound
	}

	return s.snap, nil
}

// Clear resets table, file name, and error together. The latest issued token
// is kept so in-flight ingestions stay correctly ordered across a clear.
func (s *InMemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = entity.Snapshot{}
	s.touched = false

	return nil
}
