package entities

// Phase is the top-level state of the run state machine. It is a closed set;
// every transition site switches over it exhaustively so a new phase breaks
// compilation at each spot that must handle it.
type Phase int

// Phase constants.
const (
	PhaseLevelPlay Phase = iota // rolling, locking, picking hands
	PhaseLevelResult            // level won and cashed out, rewards pending
	PhaseShopMain               // shop root: item, dice offer, next level
	PhaseShopPickUpgrade        // choosing one of three hand upgrades
	PhaseDiceEditorDie          // dice editor: choosing a die
	PhaseDiceEditorFace         // dice editor: choosing a face on the die
	PhaseWinScreen              // all levels cleared, terminal
	PhaseLoseScreen             // goal missed with no hands left, terminal
)

var phaseNames = map[Phase]string{
	PhaseLevelPlay:       "level_play",
	PhaseLevelResult:     "level_result",
	PhaseShopMain:        "shop_main",
	PhaseShopPickUpgrade: "shop_pick_upgrade",
	PhaseDiceEditorDie:   "dice_editor_die",
	PhaseDiceEditorFace:  "dice_editor_face",
	PhaseWinScreen:       "win_screen",
	PhaseLoseScreen:      "lose_screen",
}

// String returns the wire name of the phase.
func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// Terminal reports whether the phase ends the run. Only StartNewRun leaves a
// terminal phase.
func (p Phase) Terminal() bool {
	switch p {
	case PhaseWinScreen, PhaseLoseScreen:
		return true
	case PhaseLevelPlay, PhaseLevelResult, PhaseShopMain, PhaseShopPickUpgrade,
		PhaseDiceEditorDie, PhaseDiceEditorFace:
		return false
	}
	return false
}
