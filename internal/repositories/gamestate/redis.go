package gamestate

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/rollrogue/rollrogue-api/internal/errors"
	"github.com/rollrogue/rollrogue-api/internal/pkg/clock"
	redisclient "github.com/rollrogue/rollrogue-api/internal/redis"
)

const (
	// Key pattern: run_state:{run_id}
	runKeyPrefix = "run_state:"

	// Idle runs are dropped after a day by default.
	defaultTTL = 24 * time.Hour

	errRunIDEmpty = "run ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for run snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save upserts the snapshot for the run, refreshing its expiry
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State.Run.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	snapshot := &Snapshot{
		RunID:     input.State.Run.ID,
		State:     input.State,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	}

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	key := r.buildKey(snapshot.RunID)
	if err := r.client.Set(ctx, key, snapshotJSON, ttl).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store snapshot in Redis")
	}

	return &SaveOutput{Snapshot: snapshot}, nil
}

// Get retrieves the snapshot for a run by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := r.buildKey(input.RunID)

	snapshotJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("run not found")
		}
		return nil, errors.Wrap(err, "failed to get snapshot from Redis")
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}

	// A stale key can outlive its logical expiry if the Redis TTL has not
	// fired yet; treat it as gone and clean it up
	if r.clock.Now().After(snapshot.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("run has expired")
	}

	return &GetOutput{Snapshot: &snapshot}, nil
}

// Delete removes the snapshot for a run
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := r.buildKey(input.RunID)
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete snapshot from Redis")
	}

	return &DeleteOutput{Deleted: deleted > 0}, nil
}

func (r *redisRepository) buildKey(runID string) string {
	return runKeyPrefix + runID
}
