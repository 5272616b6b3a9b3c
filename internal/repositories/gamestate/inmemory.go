package gamestate

import (
	"context"
	"sync"

	"github.com/rollrogue/rollrogue-api/internal/errors"
	"github.com/rollrogue/rollrogue-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. It is
// meant for local development without Redis; expiry is enforced on read.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]Snapshot
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		clock: clk,
		store: make(map[string]Snapshot),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Save upserts the snapshot for the run, refreshing its expiry
func (r *InMemoryRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State.Run.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	snapshot := Snapshot{
		RunID:     input.State.Run.ID,
		State:     input.State,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[snapshot.RunID] = snapshot

	out := snapshot
	return &SaveOutput{Snapshot: &out}, nil
}

// Get retrieves the snapshot for a run by id
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	r.mu.RLock()
	snapshot, exists := r.store[input.RunID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFound("run not found")
	}
	if r.clock.Now().After(snapshot.ExpiresAt) {
		r.mu.Lock()
		delete(r.store, input.RunID)
		r.mu.Unlock()
		return nil, errors.NotFound("run has expired")
	}

	// Snapshot state is value-semantic, so the copy is already isolated
	out := snapshot
	return &GetOutput{Snapshot: &out}, nil
}

// Delete removes the snapshot for a run
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.RunID]; !exists {
		return &DeleteOutput{Deleted: false}, nil
	}
	delete(r.store, input.RunID)

	return &DeleteOutput{Deleted: true}, nil
}

// Len reports how many live snapshots are held. Test helper.
func (r *InMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
