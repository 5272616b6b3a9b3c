// Package game implements the game orchestrator: the action API of the run
// state machine. It is the single owner of run snapshots; every action
// loads the snapshot, applies a pure transition from internal/engine/phase,
// persists the replacement, and publishes an event for collaborators.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/rollrogue/rollrogue-api/internal/orchestrators/game Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/rollrogue/rollrogue-api/internal/engine/economy"
	"github.com/rollrogue/rollrogue-api/internal/engine/phase"
	"github.com/rollrogue/rollrogue-api/internal/entities"
	"github.com/rollrogue/rollrogue-api/internal/errors"
	"github.com/rollrogue/rollrogue-api/internal/pkg/idgen"
	"github.com/rollrogue/rollrogue-api/internal/repositories/gamestate"
)

// Event types published after committed actions. Collaborators (reveal
// timing, physics, sound) subscribe to these instead of polling snapshots.
const (
	EventRunStarted    = "rollrogue.run_started"
	EventRollTriggered = "rollrogue.roll_triggered"
	EventRollCompleted = "rollrogue.roll_completed"
	EventHandAccepted  = "rollrogue.hand_accepted"
	EventHandFinalized = "rollrogue.hand_finalized"
	EventLevelWon      = "rollrogue.level_won"
	EventLevelLost     = "rollrogue.level_lost"
	EventPurchase      = "rollrogue.purchase"
	EventRunWon        = "rollrogue.run_won"
	EventStateChanged  = "rollrogue.state_changed"
)

// Service defines the interface for game operations. Every method is one
// player (or collaborator) action from the action API; rejected actions
// return Applied false with the state untouched, never an error.
type Service interface {
	StartNewRun(ctx context.Context, input *StartNewRunInput) (*StartNewRunOutput, error)
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	StartLevel(ctx context.Context, input *StartLevelInput) (*ActionOutput, error)
	TriggerRoll(ctx context.Context, input *TriggerRollInput) (*ActionOutput, error)
	CompleteRoll(ctx context.Context, input *CompleteRollInput) (*ActionOutput, error)
	ToggleDiceLock(ctx context.Context, input *ToggleDiceLockInput) (*ActionOutput, error)
	SelectHand(ctx context.Context, input *SelectHandInput) (*ActionOutput, error)
	DeselectHand(ctx context.Context, input *DeselectHandInput) (*ActionOutput, error)
	AcceptHand(ctx context.Context, input *AcceptHandInput) (*ActionOutput, error)
	UpdateReveal(ctx context.Context, input *UpdateRevealInput) (*ActionOutput, error)
	FinalizeHand(ctx context.Context, input *FinalizeHandInput) (*ActionOutput, error)
	ClearWinAnimation(ctx context.Context, input *ClearWinAnimationInput) (*ActionOutput, error)
	CashOutNow(ctx context.Context, input *CashOutNowInput) (*ActionOutput, error)

	OpenShop(ctx context.Context, input *OpenShopInput) (*ActionOutput, error)
	SelectUpgradeItem(ctx context.Context, input *SelectUpgradeItemInput) (*ActionOutput, error)
	PickUpgradeHand(ctx context.Context, input *PickUpgradeHandInput) (*ActionOutput, error)
	CancelUpgradePick(ctx context.Context, input *CancelUpgradePickInput) (*ActionOutput, error)
	OpenDiceEditor(ctx context.Context, input *OpenDiceEditorInput) (*ActionOutput, error)
	SelectEditorDie(ctx context.Context, input *SelectEditorDieInput) (*ActionOutput, error)
	SelectEditorFace(ctx context.Context, input *SelectEditorFaceInput) (*ActionOutput, error)
	ApplyDiceUpgrade(ctx context.Context, input *ApplyDiceUpgradeInput) (*ActionOutput, error)
	CancelDiceEditor(ctx context.Context, input *CancelDiceEditorInput) (*ActionOutput, error)
	CloseShopNextLevel(ctx context.Context, input *CloseShopNextLevelInput) (*ActionOutput, error)
	ToggleOverview(ctx context.Context, input *ToggleOverviewInput) (*ActionOutput, error)
}

// Config holds the dependencies for the game orchestrator
type Config struct {
	StateRepo   gamestate.Repository
	EventBus    events.EventBus
	Roller      dice.Roller
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StateRepo == nil {
		vb.RequiredField("StateRepo")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	stateRepo gamestate.Repository
	eventBus  events.EventBus
	roller    dice.Roller
	idGen     idgen.Generator
}

// NewOrchestrator creates a new game orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		stateRepo: cfg.StateRepo,
		eventBus:  cfg.EventBus,
		roller:    cfg.Roller,
		idGen:     cfg.IDGenerator,
	}, nil
}

// runEntity makes a run addressable as an event source.
type runEntity struct {
	id string
}

func (e *runEntity) GetID() string   { return e.id }
func (e *runEntity) GetType() string { return "run" }

var _ core.Entity = (*runEntity)(nil)

// StartNewRun creates (or resets) a run and persists its initial snapshot
func (o *orchestrator) StartNewRun(ctx context.Context, input *StartNewRunInput) (*StartNewRunOutput, error) {
	if input == nil {
		input = &StartNewRunInput{}
	}
	runID := input.RunID
	if runID == "" {
		runID = o.idGen.Generate()
	}

	state := phase.NewGame(runID)
	if _, err := o.stateRepo.Save(ctx, gamestate.SaveInput{State: state}); err != nil {
		return nil, errors.Wrap(err, "failed to save new run")
	}

	o.publish(ctx, state, EventRunStarted)
	slog.Info("Run started",
		"run_id", runID,
		"goal", state.Level.Goal,
	)

	return &StartNewRunOutput{State: state}, nil
}

// GetState returns the current snapshot for UI re-reads
func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	state, err := o.load(ctx, input.RunID)
	if err != nil {
		return nil, err
	}
	return &GetStateOutput{State: *state}, nil
}

// StartLevel resets level-local state and enters play on the given level
func (o *orchestrator) StartLevel(ctx context.Context, input *StartLevelInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.StartLevel(input.LevelIndex)
	})
}

// TriggerRoll requests a throw of the unlocked dice
func (o *orchestrator) TriggerRoll(ctx context.Context, input *TriggerRollInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventRollTriggered, func(s phase.GameState) (phase.GameState, bool) {
		return s.TriggerRoll()
	})
}

// CompleteRoll commits settled dice reported by the physics collaborator
func (o *orchestrator) CompleteRoll(ctx context.Context, input *CompleteRollInput) (*ActionOutput, error) {
	for _, v := range input.Values {
		if v < 1 || v > entities.NumFaces {
			return nil, errors.InvalidArgumentf("die value out of range: %d", v)
		}
	}
	return o.apply(ctx, input.RunID, EventRollCompleted, func(s phase.GameState) (phase.GameState, bool) {
		return s.CompleteRoll(input.Values)
	})
}

// ToggleDiceLock flips the lock on one die
func (o *orchestrator) ToggleDiceLock(ctx context.Context, input *ToggleDiceLockInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.ToggleDiceLock(input.Die)
	})
}

// SelectHand picks the hand to score
func (o *orchestrator) SelectHand(ctx context.Context, input *SelectHandInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.SelectHand(input.Hand)
	})
}

// DeselectHand clears the pending hand choice
func (o *orchestrator) DeselectHand(ctx context.Context, input *DeselectHandInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.DeselectHand()
	})
}

// AcceptHand snapshots the breakdown and starts the reveal
func (o *orchestrator) AcceptHand(ctx context.Context, input *AcceptHandInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventHandAccepted, func(s phase.GameState) (phase.GameState, bool) {
		return s.AcceptHand()
	})
}

// UpdateReveal advances the reveal sequence
func (o *orchestrator) UpdateReveal(ctx context.Context, input *UpdateRevealInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.UpdateReveal(input.Step)
	})
}

// FinalizeHand commits the revealed score and advances the level machine
func (o *orchestrator) FinalizeHand(ctx context.Context, input *FinalizeHandInput) (*ActionOutput, error) {
	output, err := o.apply(ctx, input.RunID, EventHandFinalized, func(s phase.GameState) (phase.GameState, bool) {
		return s.FinalizeHand()
	})
	if err != nil || !output.Applied {
		return output, err
	}

	switch {
	case output.State.Phase == entities.PhaseLoseScreen:
		o.publish(ctx, output.State, EventLevelLost)
	case output.State.LevelWon && output.State.WinAnimating:
		// WinAnimating is only up on the finalize that won the level
		o.publish(ctx, output.State, EventLevelWon)
	}
	return output, nil
}

// ClearWinAnimation releases the one-shot win animation lock
func (o *orchestrator) ClearWinAnimation(ctx context.Context, input *ClearWinAnimationInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.ClearWinAnimation()
	})
}

// CashOutNow banks a won level and moves to the result screen
func (o *orchestrator) CashOutNow(ctx context.Context, input *CashOutNowInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.CashOutNow()
	})
}

// OpenShop applies the level payout, draws the dice offer, and enters the shop
func (o *orchestrator) OpenShop(ctx context.Context, input *OpenShopInput) (*ActionOutput, error) {
	state, err := o.load(ctx, input.RunID)
	if err != nil {
		return nil, err
	}

	rewards := economy.CalculateRewards(economy.RewardInput{
		CurrentMoney:   state.Run.Money,
		LevelIndex:     state.Run.LevelIndex,
		Score:          state.Level.Score,
		Goal:           state.Level.Goal,
		HandsRemaining: state.Level.HandsRemaining,
		RollsUsed:      state.Level.RollsUsed,
	})
	offer, err := economy.RollDiceOffer(o.roller, state.Run.Enhancements)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw dice offer")
	}

	return o.commit(ctx, *state, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.OpenShop(rewards, offer)
	})
}

// SelectUpgradeItem draws three hand options and opens the upgrade pick
func (o *orchestrator) SelectUpgradeItem(ctx context.Context, input *SelectUpgradeItemInput) (*ActionOutput, error) {
	state, err := o.load(ctx, input.RunID)
	if err != nil {
		return nil, err
	}

	options, err := economy.RandomUpgradeOptions(o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw upgrade options")
	}

	return o.commit(ctx, *state, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.SelectUpgradeItem(options)
	})
}

// PickUpgradeHand buys one level for the chosen hand
func (o *orchestrator) PickUpgradeHand(ctx context.Context, input *PickUpgradeHandInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventPurchase, func(s phase.GameState) (phase.GameState, bool) {
		return s.PickUpgradeHand(input.Hand)
	})
}

// CancelUpgradePick backs out of the upgrade pick without buying
func (o *orchestrator) CancelUpgradePick(ctx context.Context, input *CancelUpgradePickInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.CancelUpgradePick()
	})
}

// OpenDiceEditor enters the dice editor for the pending offer
func (o *orchestrator) OpenDiceEditor(ctx context.Context, input *OpenDiceEditorInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.OpenDiceEditor(input.Upgrade)
	})
}

// SelectEditorDie picks the die to enhance
func (o *orchestrator) SelectEditorDie(ctx context.Context, input *SelectEditorDieInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.SelectEditorDie(input.Die)
	})
}

// SelectEditorFace picks the face to enhance
func (o *orchestrator) SelectEditorFace(ctx context.Context, input *SelectEditorFaceInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.SelectEditorFace(input.Face)
	})
}

// ApplyDiceUpgrade commits the pending enhancement
func (o *orchestrator) ApplyDiceUpgrade(ctx context.Context, input *ApplyDiceUpgradeInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventPurchase, func(s phase.GameState) (phase.GameState, bool) {
		return s.ApplyDiceUpgrade()
	})
}

// CancelDiceEditor leaves the editor without buying
func (o *orchestrator) CancelDiceEditor(ctx context.Context, input *CancelDiceEditorInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.CancelDiceEditor()
	})
}

// CloseShopNextLevel advances to the next level or the win screen
func (o *orchestrator) CloseShopNextLevel(ctx context.Context, input *CloseShopNextLevelInput) (*ActionOutput, error) {
	output, err := o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.CloseShopNextLevel()
	})
	if err == nil && output.Applied && output.State.Phase == entities.PhaseWinScreen {
		o.publish(ctx, output.State, EventRunWon)
	}
	return output, err
}

// ToggleOverview flips the UI overview flag
func (o *orchestrator) ToggleOverview(ctx context.Context, input *ToggleOverviewInput) (*ActionOutput, error) {
	return o.apply(ctx, input.RunID, EventStateChanged, func(s phase.GameState) (phase.GameState, bool) {
		return s.ToggleOverview()
	})
}

// load fetches the current snapshot for a run
func (o *orchestrator) load(ctx context.Context, runID string) (*phase.GameState, error) {
	if runID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}
	getOutput, err := o.stateRepo.Get(ctx, gamestate.GetInput{RunID: runID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load run state")
	}
	return &getOutput.Snapshot.State, nil
}

// apply runs the load-transition-commit cycle for one action
func (o *orchestrator) apply(
	ctx context.Context,
	runID string,
	eventType string,
	transition func(phase.GameState) (phase.GameState, bool),
) (*ActionOutput, error) {
	state, err := o.load(ctx, runID)
	if err != nil {
		return nil, err
	}
	return o.commit(ctx, *state, eventType, transition)
}

// commit applies the transition to a loaded state and, if it took effect,
// persists and announces the new snapshot
func (o *orchestrator) commit(
	ctx context.Context,
	state phase.GameState,
	eventType string,
	transition func(phase.GameState) (phase.GameState, bool),
) (*ActionOutput, error) {
	next, applied := transition(state)
	if !applied {
		return &ActionOutput{State: state}, nil
	}

	if _, err := o.stateRepo.Save(ctx, gamestate.SaveInput{State: next}); err != nil {
		return nil, errors.Wrap(err, "failed to save run state")
	}

	o.publish(ctx, next, eventType)
	slog.Info("Action applied",
		"run_id", next.Run.ID,
		"event", eventType,
		"phase", next.Phase.String(),
		"level", next.Run.LevelIndex,
		"score", next.Level.Score,
		"money", next.Run.Money,
	)

	return &ActionOutput{State: next, Applied: true}, nil
}

// publish announces a committed state change. Collaborators are best
// effort: a publish failure is logged, never surfaced to the player.
func (o *orchestrator) publish(ctx context.Context, state phase.GameState, eventType string) {
	event := events.NewGameEvent(eventType, &runEntity{id: state.Run.ID}, nil)
	event.Context().Set("phase", state.Phase.String())
	event.Context().Set("level", state.Run.LevelIndex)
	event.Context().Set("score", state.Level.Score)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish game event",
			"run_id", state.Run.ID,
			"event", eventType,
			"error", err,
		)
	}
}
