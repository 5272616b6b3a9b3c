// Package phase implements the run state machine as pure transitions over
// an immutable GameState value. Every action is old-state in, new-state out;
// an action whose preconditions fail returns the receiver unchanged and
// false, which is the engine's silent no-op contract. A thin orchestrator
// owns the current snapshot and is the only writer.
package phase

import (
	"github.com/rollrogue/rollrogue-api/internal/engine/economy"
	"github.com/rollrogue/rollrogue-api/internal/engine/scoring"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// RevealState drives the stepwise score disclosure. The breakdown is
// snapshotted on AcceptHand and committed by FinalizeHand; between the two
// the machine can sit paused indefinitely.
type RevealState struct {
	Active    bool              `json:"active"`
	Breakdown scoring.Breakdown `json:"breakdown"`

	// Step counts contributions already disclosed, 0..len(Contributions).
	Step int `json:"step"`
}

// ShopState is the shop-visit scratch state: the payout being displayed,
// the dice offer drawn for this visit, and the current upgrade options.
type ShopState struct {
	Rewards   economy.RewardBreakdown  `json:"rewards"`
	DiceOffer entities.EnhancementType `json:"dice_offer"`
	Options   [3]entities.Hand         `json:"options"`
}

// EditorState is the dice-editor sub-flow selection. Die is -1 and Face 0
// while nothing is selected.
type EditorState struct {
	PendingType entities.EnhancementType `json:"pending_type"`
	Die         int                      `json:"die"`
	Face        int                      `json:"face"`
}

func clearedEditor() EditorState {
	return EditorState{Die: -1}
}

// GameState is the whole machine state: run progress, the level session,
// the hand attempt, the dice, and every UI-facing flag. It is a pure value;
// transitions copy it, so snapshots held by callers never mutate under them.
type GameState struct {
	Run   entities.Run          `json:"run"`
	Level entities.LevelSession `json:"level"`
	Hand  entities.HandAttempt  `json:"hand"`
	Dice  entities.DiceState    `json:"dice"`

	Phase entities.Phase `json:"phase"`

	// Selected is the pending hand choice, HandNone when nothing is picked.
	Selected entities.Hand `json:"selected"`

	// Rolling is set between TriggerRoll and CompleteRoll while the dice
	// are in flight. Roll, lock and selection actions are rejected then.
	Rolling bool `json:"rolling"`

	// RollTrigger is a monotonic counter the physics collaborator watches
	// to know a new throw was requested.
	RollTrigger int `json:"roll_trigger"`

	// LevelWon is set when the score first reaches the goal. The machine
	// stays in PhaseLevelPlay until CashOutNow.
	LevelWon bool `json:"level_won"`

	// WinAnimating is the one-shot win animation lock; the UI clears it
	// explicitly when its animation completes.
	WinAnimating bool `json:"win_animating"`

	OverviewOpen bool `json:"overview_open"`

	Reveal RevealState `json:"reveal"`
	Shop   ShopState   `json:"shop"`
	Editor EditorState `json:"editor"`
}

// NewGame returns the initial state of a fresh run: level 0, full budgets,
// unrolled dice, phase PhaseLevelPlay.
func NewGame(runID string) GameState {
	s := GameState{
		Run:      entities.NewRun(runID),
		Selected: entities.HandNone,
		Editor:   clearedEditor(),
	}
	s, _ = s.startLevel(0)
	return s
}

// StartLevel resets the level, hand, and dice state for the given level and
// enters PhaseLevelPlay. Run progress is kept. The index must name a real
// level at or past the current one and the run must not be over.
func (s GameState) StartLevel(levelIndex int) (GameState, bool) {
	if s.Phase.Terminal() {
		return s, false
	}
	if !entities.ValidLevel(levelIndex) || levelIndex < s.Run.LevelIndex {
		return s, false
	}
	return s.startLevel(levelIndex)
}

func (s GameState) startLevel(levelIndex int) (GameState, bool) {
	s.Run.LevelIndex = levelIndex
	s.Level = entities.NewLevelSession(levelIndex)
	s.Hand = entities.NewHandAttempt()
	s.Dice = entities.DiceState{}
	s.Phase = entities.PhaseLevelPlay
	s.Selected = entities.HandNone
	s.Rolling = false
	s.LevelWon = false
	s.WinAnimating = false
	s.Reveal = RevealState{}
	s.Shop = ShopState{}
	s.Editor = clearedEditor()
	return s, true
}

// ToggleOverview flips the overview flag. UI-only, legal in every phase.
func (s GameState) ToggleOverview() (GameState, bool) {
	s.OverviewOpen = !s.OverviewOpen
	return s, true
}
