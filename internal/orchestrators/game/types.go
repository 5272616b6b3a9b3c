package game

import (
	"github.com/rollrogue/rollrogue-api/internal/engine/phase"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// StartNewRunInput defines the request for starting a new run
type StartNewRunInput struct {
	// RunID reuses an existing run id; empty means generate a fresh one.
	// Starting over an existing id resets that run completely.
	RunID string
}

// StartNewRunOutput defines the response for starting a new run
type StartNewRunOutput struct {
	State phase.GameState
}

// GetStateInput defines the request for reading a run snapshot
type GetStateInput struct {
	RunID string
}

// GetStateOutput defines the response for reading a run snapshot
type GetStateOutput struct {
	State phase.GameState
}

// ActionOutput is the shared response of every game action: the snapshot
// after the action, and whether the action applied. A rejected action is a
// silent no-op, so Applied false still comes back with a nil error and the
// unchanged state.
type ActionOutput struct {
	State   phase.GameState
	Applied bool
}

// StartLevelInput defines the request for starting a level
type StartLevelInput struct {
	RunID      string
	LevelIndex int
}

// TriggerRollInput defines the request for requesting a dice throw
type TriggerRollInput struct {
	RunID string
}

// CompleteRollInput defines the request for reporting settled dice
type CompleteRollInput struct {
	RunID  string
	Values [entities.NumDice]int
}

// ToggleDiceLockInput defines the request for toggling a die lock
type ToggleDiceLockInput struct {
	RunID string
	Die   int
}

// SelectHandInput defines the request for selecting a hand
type SelectHandInput struct {
	RunID string
	Hand  entities.Hand
}

// DeselectHandInput defines the request for clearing the hand selection
type DeselectHandInput struct {
	RunID string
}

// AcceptHandInput defines the request for accepting the selected hand
type AcceptHandInput struct {
	RunID string
}

// UpdateRevealInput defines the request for advancing the reveal
type UpdateRevealInput struct {
	RunID string
	Step  int
}

// FinalizeHandInput defines the request for committing the revealed hand
type FinalizeHandInput struct {
	RunID string
}

// ClearWinAnimationInput defines the request for releasing the win lock
type ClearWinAnimationInput struct {
	RunID string
}

// CashOutNowInput defines the request for cashing out a won level
type CashOutNowInput struct {
	RunID string
}

// OpenShopInput defines the request for entering the shop
type OpenShopInput struct {
	RunID string
}

// SelectUpgradeItemInput defines the request for opening the upgrade pick
type SelectUpgradeItemInput struct {
	RunID string
}

// PickUpgradeHandInput defines the request for buying a hand upgrade
type PickUpgradeHandInput struct {
	RunID string
	Hand  entities.Hand
}

// CancelUpgradePickInput defines the request for leaving the upgrade pick
type CancelUpgradePickInput struct {
	RunID string
}

// OpenDiceEditorInput defines the request for entering the dice editor
type OpenDiceEditorInput struct {
	RunID   string
	Upgrade entities.EnhancementType
}

// SelectEditorDieInput defines the request for picking the editor die
type SelectEditorDieInput struct {
	RunID string
	Die   int
}

// SelectEditorFaceInput defines the request for picking the editor face
type SelectEditorFaceInput struct {
	RunID string
	Face  int
}

// ApplyDiceUpgradeInput defines the request for committing the enhancement
type ApplyDiceUpgradeInput struct {
	RunID string
}

// CancelDiceEditorInput defines the request for leaving the dice editor
type CancelDiceEditorInput struct {
	RunID string
}

// CloseShopNextLevelInput defines the request for leaving the shop
type CloseShopNextLevelInput struct {
	RunID string
}

// ToggleOverviewInput defines the request for flipping the overview flag
type ToggleOverviewInput struct {
	RunID string
}
