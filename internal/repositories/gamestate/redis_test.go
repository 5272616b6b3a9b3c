package gamestate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rollrogue/rollrogue-api/internal/engine/phase"
	"github.com/rollrogue/rollrogue-api/internal/errors"
	"github.com/rollrogue/rollrogue-api/internal/pkg/clock"
	"github.com/rollrogue/rollrogue-api/internal/repositories/gamestate"
	"github.com/rollrogue/rollrogue-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo  gamestate.Repository
	clock *clock.Fixed
	ctx   context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, _ := testutils.CreateTestRedisClient(s.T())
	s.clock = &clock.Fixed{Time: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := gamestate.NewRedisRepository(&gamestate.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	state := phase.NewGame("run_123")

	saved, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: state})
	s.Require().NoError(err)
	s.Equal("run_123", saved.Snapshot.RunID)
	s.Equal(s.clock.Time, saved.Snapshot.SavedAt)
	s.Equal(s.clock.Time.Add(24*time.Hour), saved.Snapshot.ExpiresAt)

	got, err := s.repo.Get(s.ctx, gamestate.GetInput{RunID: "run_123"})
	s.Require().NoError(err)
	s.Equal(state, got.Snapshot.State)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwrites() {
	state := phase.NewGame("run_123")
	_, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: state})
	s.Require().NoError(err)

	next, ok := state.TriggerRoll()
	s.Require().True(ok)
	_, err = s.repo.Save(s.ctx, gamestate.SaveInput{State: next})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, gamestate.GetInput{RunID: "run_123"})
	s.Require().NoError(err)
	s.Equal(next, got.Snapshot.State)
	s.True(got.Snapshot.State.Rolling)
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, gamestate.GetInput{RunID: "run_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetExpired() {
	state := phase.NewGame("run_123")
	_, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: state, TTL: time.Hour})
	s.Require().NoError(err)

	s.clock.Time = s.clock.Time.Add(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, gamestate.GetInput{RunID: "run_123"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	state := phase.NewGame("run_123")
	_, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: state})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, gamestate.DeleteInput{RunID: "run_123"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.repo.Get(s.ctx, gamestate.GetInput{RunID: "run_123"})
	s.True(errors.IsNotFound(err))

	out, err = s.repo.Delete(s.ctx, gamestate.DeleteInput{RunID: "run_123"})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RedisRepositoryTestSuite) TestEmptyRunID() {
	_, err := s.repo.Save(s.ctx, gamestate.SaveInput{State: phase.GameState{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, gamestate.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, gamestate.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
