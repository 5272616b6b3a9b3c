// Package gamestate provides repository interface and types for run state
// snapshots. The orchestrator is the single writer: it loads the snapshot,
// applies a pure transition, and saves the replacement whole.
package gamestate

import (
	"context"
	"time"

	"github.com/rollrogue/rollrogue-api/internal/engine/phase"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/rollrogue/rollrogue-api/internal/repositories/gamestate Repository

// Snapshot wraps a game state with storage bookkeeping.
type Snapshot struct {
	// RunID keys the snapshot; it matches State.Run.ID.
	RunID string

	// State is the full machine state as of SavedAt.
	State phase.GameState

	// SavedAt is when this snapshot was committed.
	SavedAt time.Time

	// ExpiresAt is when an idle run is dropped.
	ExpiresAt time.Time
}

// SaveInput contains parameters for saving a snapshot
type SaveInput struct {
	State phase.GameState
	TTL   time.Duration // idle-run expiry; zero means the default
}

// SaveOutput contains the result of saving a snapshot
type SaveOutput struct {
	Snapshot *Snapshot
}

// GetInput contains parameters for loading a snapshot
type GetInput struct {
	RunID string
}

// GetOutput contains the result of loading a snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// DeleteInput contains parameters for deleting a snapshot
type DeleteInput struct {
	RunID string
}

// DeleteOutput contains the result of deleting a snapshot
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the interface for run snapshot storage operations
type Repository interface {
	// Save upserts the snapshot for the run, refreshing its expiry
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the snapshot for a run by id
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the snapshot for a run
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
