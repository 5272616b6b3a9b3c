package entities

// HandLevels is the per-run upgrade level of every hand, indexed by Hand.
// Levels start at 1 and only ever increase.
type HandLevels [NumHands]int

// NewHandLevels returns the level table a fresh run starts with.
func NewHandLevels() HandLevels {
	var levels HandLevels
	for i := range levels {
		levels[i] = 1
	}
	return levels
}

// Level returns the current level of h, or 0 for an invalid hand.
func (l HandLevels) Level(h Hand) int {
	if !h.Valid() {
		return 0
	}
	return l[h]
}

// Run is the cross-level persistent progress of one playthrough: money, the
// current level index, and the two upgrade tables. Only explicit purchases
// mutate the tables; everything else is reset on level transitions.
type Run struct {
	ID           string           `json:"id"`
	Money        int              `json:"money"`
	LevelIndex   int              `json:"level_index"`
	HandLevels   HandLevels       `json:"hand_levels"`
	Enhancements EnhancementTable `json:"enhancements"`
}

// NewRun returns the starting run state for the given id.
func NewRun(id string) Run {
	return Run{
		ID:         id,
		Money:      StartingMoney,
		HandLevels: NewHandLevels(),
	}
}

// LevelSession is the state local to one level: the score accumulated so
// far, the goal, the hand budget, and which hands were already spent.
type LevelSession struct {
	Score          int     `json:"score"`
	Goal           int     `json:"goal"`
	HandsRemaining int     `json:"hands_remaining"`
	UsedHands      HandSet `json:"used_hands"`
	RollsUsed      int     `json:"rolls_used"`
}

// NewLevelSession returns a fresh session for the given level index.
func NewLevelSession(levelIndex int) LevelSession {
	return LevelSession{
		Goal:           LevelGoal(levelIndex),
		HandsRemaining: HandsPerLevel,
	}
}

// HandAttempt is the state local to one hand-selection cycle. It is replaced
// whole each time a hand is finalized.
type HandAttempt struct {
	RollsRemaining int  `json:"rolls_remaining"`
	HasRolled      bool `json:"has_rolled"`
}

// NewHandAttempt returns a fresh attempt with the full roll budget.
func NewHandAttempt() HandAttempt {
	return HandAttempt{RollsRemaining: RollsPerHand}
}

// DiceState is the settled face values and lock flags of the five dice.
// Values are 0 before the first roll of a level.
type DiceState struct {
	Values [NumDice]int  `json:"values"`
	Locked [NumDice]bool `json:"locked"`
}

// Unlock clears every lock, leaving values untouched.
func (d DiceState) Unlock() DiceState {
	d.Locked = [NumDice]bool{}
	return d
}
