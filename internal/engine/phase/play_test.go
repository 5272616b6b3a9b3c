package phase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollrogue/rollrogue-api/internal/engine/phase"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// roll drives one full throw: trigger, then settle on the given faces.
func roll(t *testing.T, s phase.GameState, values [5]int) phase.GameState {
	t.Helper()

	s, ok := s.TriggerRoll()
	require.True(t, ok, "trigger roll")
	s, ok = s.CompleteRoll(values)
	require.True(t, ok, "complete roll")
	return s
}

// scoreHand drives one hand from selection through finalize.
func scoreHand(t *testing.T, s phase.GameState, values [5]int, hand entities.Hand) phase.GameState {
	t.Helper()

	s = roll(t, s, values)
	s, ok := s.SelectHand(hand)
	require.True(t, ok, "select %s", hand)
	s, ok = s.AcceptHand()
	require.True(t, ok, "accept %s", hand)
	s, ok = s.FinalizeHand()
	require.True(t, ok, "finalize %s", hand)
	return s
}

func TestNewGame(t *testing.T) {
	s := phase.NewGame("run_1")

	assert.Equal(t, "run_1", s.Run.ID)
	assert.Equal(t, entities.StartingMoney, s.Run.Money)
	assert.Equal(t, 0, s.Run.LevelIndex)
	assert.Equal(t, entities.PhaseLevelPlay, s.Phase)
	assert.Equal(t, entities.LevelGoal(0), s.Level.Goal)
	assert.Equal(t, entities.HandsPerLevel, s.Level.HandsRemaining)
	assert.Equal(t, entities.RollsPerHand, s.Hand.RollsRemaining)
	assert.False(t, s.Hand.HasRolled)
	assert.Equal(t, entities.HandNone, s.Selected)

	for _, h := range entities.AllHands() {
		assert.Equal(t, 1, s.Run.HandLevels.Level(h))
	}
}

func TestTriggerRoll(t *testing.T) {
	t.Run("spends the roll budget", func(t *testing.T) {
		s := phase.NewGame("run_1")

		s, ok := s.TriggerRoll()
		require.True(t, ok)
		assert.Equal(t, entities.RollsPerHand-1, s.Hand.RollsRemaining)
		assert.True(t, s.Hand.HasRolled)
		assert.True(t, s.Rolling)
		assert.Equal(t, 1, s.RollTrigger)
		assert.Equal(t, 1, s.Level.RollsUsed)
	})

	t.Run("rejected while rolling", func(t *testing.T) {
		s := phase.NewGame("run_1")
		s, _ = s.TriggerRoll()

		next, ok := s.TriggerRoll()
		assert.False(t, ok)
		assert.Equal(t, s, next, "state untouched on a no-op")
	})

	t.Run("rejected with no rolls left", func(t *testing.T) {
		s := phase.NewGame("run_1")
		for i := 0; i < entities.RollsPerHand; i++ {
			s = roll(t, s, [5]int{1, 2, 3, 4, 5})
		}

		next, ok := s.TriggerRoll()
		assert.False(t, ok)
		assert.Equal(t, s, next)
	})

	t.Run("rejected with a hand selected", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})
		s, ok := s.SelectHand(entities.HandLargeStraight)
		require.True(t, ok)

		_, ok = s.TriggerRoll()
		assert.False(t, ok)
	})
}

func TestCompleteRoll(t *testing.T) {
	t.Run("rejected when not rolling", func(t *testing.T) {
		s := phase.NewGame("run_1")
		_, ok := s.CompleteRoll([5]int{1, 2, 3, 4, 5})
		assert.False(t, ok)
	})

	t.Run("rejects out of range faces", func(t *testing.T) {
		s := phase.NewGame("run_1")
		s, _ = s.TriggerRoll()

		_, ok := s.CompleteRoll([5]int{0, 2, 3, 4, 5})
		assert.False(t, ok)
		_, ok = s.CompleteRoll([5]int{1, 2, 3, 4, 7})
		assert.False(t, ok)
	})

	t.Run("locked dice keep their value", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{6, 2, 3, 4, 5})
		s, ok := s.ToggleDiceLock(0)
		require.True(t, ok)

		s = roll(t, s, [5]int{1, 1, 1, 1, 1})

		assert.Equal(t, 6, s.Dice.Values[0], "locked die unchanged")
		assert.Equal(t, [5]int{6, 1, 1, 1, 1}, s.Dice.Values)
	})

	t.Run("all locks release when the budget runs out", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{6, 2, 3, 4, 5})
		s, _ = s.ToggleDiceLock(0)
		s, _ = s.ToggleDiceLock(1)

		s = roll(t, s, [5]int{1, 1, 1, 1, 1})
		assert.True(t, s.Dice.Locked[0], "locks survive a mid-budget roll")

		s = roll(t, s, [5]int{2, 2, 2, 2, 2})
		assert.Equal(t, 0, s.Hand.RollsRemaining)
		assert.Equal(t, [5]bool{}, s.Dice.Locked, "locks meaningless with no rolls left")
	})
}

func TestToggleDiceLock(t *testing.T) {
	t.Run("rejected before the first roll", func(t *testing.T) {
		s := phase.NewGame("run_1")
		_, ok := s.ToggleDiceLock(0)
		assert.False(t, ok)
	})

	t.Run("toggles", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})

		s, ok := s.ToggleDiceLock(2)
		require.True(t, ok)
		assert.True(t, s.Dice.Locked[2])

		s, ok = s.ToggleDiceLock(2)
		require.True(t, ok)
		assert.False(t, s.Dice.Locked[2])
	})

	t.Run("rejects out of range dice", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})

		_, ok := s.ToggleDiceLock(-1)
		assert.False(t, ok)
		_, ok = s.ToggleDiceLock(5)
		assert.False(t, ok)
	})
}

func TestSelectHand(t *testing.T) {
	t.Run("rejected before the first roll", func(t *testing.T) {
		s := phase.NewGame("run_1")
		_, ok := s.SelectHand(entities.HandOnes)
		assert.False(t, ok)
	})

	t.Run("only valid hands select", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})

		_, ok := s.SelectHand(entities.HandSixes)
		assert.False(t, ok, "no six showing")

		s, ok = s.SelectHand(entities.HandLargeStraight)
		require.True(t, ok)
		assert.Equal(t, entities.HandLargeStraight, s.Selected)
	})

	t.Run("used hands do not select again", func(t *testing.T) {
		s := scoreHand(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5}, entities.HandLargeStraight)

		s = roll(t, s, [5]int{1, 2, 3, 4, 5})
		_, ok := s.SelectHand(entities.HandLargeStraight)
		assert.False(t, ok)

		_, ok = s.SelectHand(entities.HandSmallStraight)
		assert.True(t, ok)
	})

	t.Run("selection is exclusive", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})
		s, _ = s.SelectHand(entities.HandOnes)

		_, ok := s.SelectHand(entities.HandTwos)
		assert.False(t, ok, "deselect first")
	})
}

func TestDeselectHand(t *testing.T) {
	s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})

	_, ok := s.DeselectHand()
	assert.False(t, ok, "nothing selected")

	s, _ = s.SelectHand(entities.HandOnes)
	s, ok = s.DeselectHand()
	require.True(t, ok)
	assert.Equal(t, entities.HandNone, s.Selected)

	s, _ = s.SelectHand(entities.HandOnes)
	s, _ = s.AcceptHand()
	_, ok = s.DeselectHand()
	assert.False(t, ok, "accepted hands are committed to the reveal")
}

func TestAcceptHand(t *testing.T) {
	t.Run("starts the reveal and unlocks dice", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{5, 5, 5, 2, 3})
		s, _ = s.ToggleDiceLock(0)
		s, ok := s.SelectHand(entities.HandFives)
		require.True(t, ok)

		s, ok = s.AcceptHand()
		require.True(t, ok)
		assert.True(t, s.Reveal.Active)
		assert.Equal(t, 0, s.Reveal.Step)
		assert.Equal(t, entities.HandFives, s.Reveal.Breakdown.Hand)
		assert.Equal(t, 15, s.Reveal.Breakdown.FinalScore)
		assert.Equal(t, [5]bool{}, s.Dice.Locked)
		assert.Equal(t, 0, s.Level.Score, "score lands on finalize, not accept")
	})

	t.Run("rejected without a selection", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})
		_, ok := s.AcceptHand()
		assert.False(t, ok)
	})

	t.Run("rejected while a reveal runs", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{1, 2, 3, 4, 5})
		s, _ = s.SelectHand(entities.HandOnes)
		s, _ = s.AcceptHand()

		_, ok := s.AcceptHand()
		assert.False(t, ok)
	})
}

func TestUpdateReveal(t *testing.T) {
	s := roll(t, phase.NewGame("run_1"), [5]int{5, 5, 5, 2, 3})
	s, _ = s.SelectHand(entities.HandFives)
	s, _ = s.AcceptHand()
	require.Len(t, s.Reveal.Breakdown.Contributions, 3)

	t.Run("moves forward only", func(t *testing.T) {
		s, ok := s.UpdateReveal(2)
		require.True(t, ok)
		assert.Equal(t, 2, s.Reveal.Step)

		_, ok = s.UpdateReveal(1)
		assert.False(t, ok)
		_, ok = s.UpdateReveal(2)
		assert.False(t, ok, "same step is a no-op")
	})

	t.Run("clamps past the end", func(t *testing.T) {
		s, ok := s.UpdateReveal(99)
		require.True(t, ok)
		assert.Equal(t, 3, s.Reveal.Step)
	})

	t.Run("rejected with no reveal running", func(t *testing.T) {
		fresh := phase.NewGame("run_1")
		_, ok := fresh.UpdateReveal(1)
		assert.False(t, ok)
	})

	t.Run("can pause indefinitely", func(t *testing.T) {
		s, ok := s.UpdateReveal(1)
		require.True(t, ok)

		// Nothing times the reveal out; other play actions stay rejected.
		_, ok = s.TriggerRoll()
		assert.False(t, ok)
		_, ok = s.SelectHand(entities.HandOnes)
		assert.False(t, ok)
	})
}

func TestFinalizeHand(t *testing.T) {
	t.Run("commits the score and spends the hand", func(t *testing.T) {
		s := roll(t, phase.NewGame("run_1"), [5]int{5, 5, 5, 2, 3})
		s, _ = s.SelectHand(entities.HandFives)
		s, _ = s.AcceptHand()

		s, ok := s.FinalizeHand()
		require.True(t, ok)
		assert.Equal(t, 15, s.Level.Score)
		assert.Equal(t, entities.HandsPerLevel-1, s.Level.HandsRemaining)
		assert.True(t, s.Level.UsedHands.Contains(entities.HandFives))
		assert.Equal(t, entities.HandNone, s.Selected)
		assert.False(t, s.Reveal.Active)
		assert.Equal(t, entities.RollsPerHand, s.Hand.RollsRemaining, "fresh roll budget")
		assert.False(t, s.Hand.HasRolled)
	})

	t.Run("rejected with no reveal running", func(t *testing.T) {
		s := phase.NewGame("run_1")
		_, ok := s.FinalizeHand()
		assert.False(t, ok)
	})

	t.Run("reaching the goal marks the level won", func(t *testing.T) {
		s := phase.NewGame("run_1")
		s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandFiveOfAKind) // 50 >= goal 50

		assert.True(t, s.LevelWon)
		assert.True(t, s.WinAnimating)
		assert.Equal(t, entities.PhaseLevelPlay, s.Phase, "stays in play until cash out")
	})

	t.Run("win animation fires once", func(t *testing.T) {
		s := phase.NewGame("run_1")
		s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandFiveOfAKind)
		s, ok := s.ClearWinAnimation()
		require.True(t, ok)

		s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandSixes)
		assert.True(t, s.LevelWon)
		assert.False(t, s.WinAnimating, "no second animation")
	})

	t.Run("winning on the last hand exhausts the attempt", func(t *testing.T) {
		s := phase.NewGame("run_1")
		attempts := []struct {
			values [5]int
			hand   entities.Hand
		}{
			{[5]int{1, 1, 2, 3, 4}, entities.HandOnes},
			{[5]int{2, 2, 1, 3, 4}, entities.HandTwos},
			{[5]int{3, 1, 2, 4, 6}, entities.HandThrees},
			{[5]int{4, 1, 2, 3, 6}, entities.HandFours},
			{[5]int{5, 1, 2, 3, 4}, entities.HandFives},
		}
		for _, a := range attempts {
			s = scoreHand(t, s, a.values, a.hand)
		}
		s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandFiveOfAKind)

		require.True(t, s.LevelWon)
		assert.Equal(t, 0, s.Level.HandsRemaining)
		assert.Equal(t, 0, s.Hand.RollsRemaining, "no rolls carry over past the last hand")

		s, ok := s.ClearWinAnimation()
		require.True(t, ok)

		_, ok = s.TriggerRoll()
		assert.False(t, ok, "no rolling with the hand budget spent")
		_, ok = s.SelectHand(entities.HandSixes)
		assert.False(t, ok, "no scoring with the hand budget spent")
		assert.Equal(t, 0, s.Level.HandsRemaining, "never goes negative")

		s, ok = s.CashOutNow()
		require.True(t, ok)
		assert.Equal(t, entities.PhaseLevelResult, s.Phase)
	})

	t.Run("out of hands under the goal loses the run", func(t *testing.T) {
		s := phase.NewGame("run_1")
		attempts := []struct {
			values [5]int
			hand   entities.Hand
		}{
			{[5]int{1, 1, 2, 3, 4}, entities.HandOnes},
			{[5]int{2, 2, 1, 3, 4}, entities.HandTwos},
			{[5]int{3, 1, 2, 4, 6}, entities.HandThrees},
			{[5]int{4, 1, 2, 3, 6}, entities.HandFours},
			{[5]int{5, 1, 2, 3, 4}, entities.HandFives},
			{[5]int{6, 1, 2, 3, 4}, entities.HandSixes},
		}
		for _, a := range attempts {
			s = scoreHand(t, s, a.values, a.hand)
		}

		assert.Equal(t, 24, s.Level.Score, "well under the goal")
		assert.Equal(t, entities.PhaseLoseScreen, s.Phase)
		assert.True(t, s.Phase.Terminal())
	})
}

func TestClearWinAnimation(t *testing.T) {
	s := phase.NewGame("run_1")
	_, ok := s.ClearWinAnimation()
	assert.False(t, ok, "nothing to clear")

	s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandFiveOfAKind)
	s, ok = s.ClearWinAnimation()
	require.True(t, ok)
	assert.False(t, s.WinAnimating)
}

func TestCashOutNow(t *testing.T) {
	t.Run("rejected before the goal", func(t *testing.T) {
		s := phase.NewGame("run_1")
		_, ok := s.CashOutNow()
		assert.False(t, ok)
	})

	t.Run("rejected while the win animation runs", func(t *testing.T) {
		s := phase.NewGame("run_1")
		s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandFiveOfAKind)

		_, ok := s.CashOutNow()
		assert.False(t, ok)

		s, _ = s.ClearWinAnimation()
		s, ok = s.CashOutNow()
		require.True(t, ok)
		assert.Equal(t, entities.PhaseLevelResult, s.Phase)
	})

	t.Run("player may keep scoring before cashing out", func(t *testing.T) {
		s := phase.NewGame("run_1")
		s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandFiveOfAKind)
		s, _ = s.ClearWinAnimation()

		s = scoreHand(t, s, [5]int{6, 6, 6, 6, 6}, entities.HandSixes)
		assert.Equal(t, 80, s.Level.Score)

		s, ok := s.CashOutNow()
		require.True(t, ok)
		assert.Equal(t, entities.PhaseLevelResult, s.Phase)
	})
}
