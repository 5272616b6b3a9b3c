package v1alpha1

import "github.com/rollrogue/rollrogue-api/internal/engine/economy"

// ActionResponse is the envelope every action endpoint returns: whether the
// action applied and the snapshot afterwards. Rejected actions come back
// 200 with Applied false, mirroring the engine's silent no-op contract.
type ActionResponse struct {
	Applied bool       `json:"applied"`
	State   *StateView `json:"state"`
}

// StateView is the wire shape of a run snapshot. Enums go out as their
// string names so clients never see internal ordinals.
type StateView struct {
	RunID string `json:"run_id"`
	Phase string `json:"phase"`

	Money      int `json:"money"`
	LevelIndex int `json:"level_index"`

	Goal           int `json:"goal"`
	Score          int `json:"score"`
	HandsRemaining int `json:"hands_remaining"`
	RollsUsed      int `json:"rolls_used"`

	RollsRemaining int  `json:"rolls_remaining"`
	HasRolled      bool `json:"has_rolled"`

	Dice [5]DieView `json:"dice"`

	HandLevels map[string]int `json:"hand_levels"`
	UsedHands  []string       `json:"used_hands"`
	ValidHands []string       `json:"valid_hands"`

	SelectedHand string `json:"selected_hand,omitempty"`
	Rolling      bool   `json:"rolling"`
	RollTrigger  int    `json:"roll_trigger"`
	LevelWon     bool   `json:"level_won"`
	WinAnimating bool   `json:"win_animating"`
	OverviewOpen bool   `json:"overview_open"`

	Reveal *RevealView `json:"reveal,omitempty"`
	Shop   *ShopView   `json:"shop,omitempty"`
	Editor *EditorView `json:"editor,omitempty"`
}

// DieView is one die on the table.
type DieView struct {
	Value  int        `json:"value"`
	Locked bool       `json:"locked"`
	Faces  [6][]string `json:"faces"`
}

// RevealView is the in-flight scoring reveal.
type RevealView struct {
	Hand          string             `json:"hand"`
	HandLevel     int                `json:"hand_level"`
	Step          int                `json:"step"`
	FixedBase     int                `json:"fixed_base"`
	Contributions []ContributionView `json:"contributions"`
	Multiplier    int                `json:"multiplier"`
	Subtotal      int                `json:"subtotal"`
	FinalScore    int                `json:"final_score"`
}

// ContributionView is one die's share of a revealed score.
type ContributionView struct {
	Die    int `json:"die"`
	Value  int `json:"value"`
	Base   int `json:"base"`
	Points int `json:"points"`
}

// ShopView is the current shop visit.
type ShopView struct {
	Rewards   economy.RewardBreakdown `json:"rewards"`
	DiceOffer string                  `json:"dice_offer,omitempty"`
	Options   []string                `json:"options,omitempty"`
}

// EditorView is the dice-editor sub-flow selection.
type EditorView struct {
	PendingType string `json:"pending_type"`
	Die         int    `json:"die"`
	Face        int    `json:"face"`
}

// Request bodies for the action endpoints.

// StartLevelRequest selects the level to start
type StartLevelRequest struct {
	LevelIndex int `json:"level_index"`
}

// CompleteRollRequest reports the settled dice
type CompleteRollRequest struct {
	Values []int `json:"values"`
}

// ToggleLockRequest names the die to lock or unlock
type ToggleLockRequest struct {
	Die int `json:"die"`
}

// SelectHandRequest names the hand to select
type SelectHandRequest struct {
	Hand string `json:"hand"`
}

// UpdateRevealRequest advances the reveal to a step
type UpdateRevealRequest struct {
	Step int `json:"step"`
}

// PickUpgradeRequest names the hand upgrade to buy
type PickUpgradeRequest struct {
	Hand string `json:"hand"`
}

// OpenDiceEditorRequest names the upgrade type to spend
type OpenDiceEditorRequest struct {
	Upgrade string `json:"upgrade"`
}

// SelectEditorDieRequest names the die to enhance
type SelectEditorDieRequest struct {
	Die int `json:"die"`
}

// SelectEditorFaceRequest names the face to enhance
type SelectEditorFaceRequest struct {
	Face int `json:"face"`
}
