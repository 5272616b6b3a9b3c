package entities

// Fixed game-rule budgets.
const (
	// HandsPerLevel is how many hands may be played before a level ends.
	HandsPerLevel = 6

	// RollsPerHand is the roll budget of each hand attempt.
	RollsPerHand = 3

	// StartingMoney is the bankroll a new run opens with.
	StartingMoney = 5
)

// levelGoals is the fixed per-level score threshold table. Clearing the last
// entry wins the run.
var levelGoals = [...]int{
	50,
	75,
	100,
	140,
	190,
	250,
	320,
	400,
	500,
	650,
}

// NumLevels is how many levels a run spans.
const NumLevels = len(levelGoals)

// LevelGoal returns the score goal of the given level index, or 0 for an
// index outside the run.
func LevelGoal(levelIndex int) int {
	if levelIndex < 0 || levelIndex >= NumLevels {
		return 0
	}
	return levelGoals[levelIndex]
}

// ValidLevel reports whether the index names a real level.
func ValidLevel(levelIndex int) bool {
	return levelIndex >= 0 && levelIndex < NumLevels
}
