package phase

import (
	"github.com/rollrogue/rollrogue-api/internal/engine/scoring"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// canAct reports whether play-phase actions are allowed at all: in
// PhaseLevelPlay, dice settled, no reveal running, win animation done.
func (s GameState) canAct() bool {
	switch s.Phase {
	case entities.PhaseLevelPlay:
	case entities.PhaseLevelResult, entities.PhaseShopMain, entities.PhaseShopPickUpgrade,
		entities.PhaseDiceEditorDie, entities.PhaseDiceEditorFace,
		entities.PhaseWinScreen, entities.PhaseLoseScreen:
		return false
	default:
		return false
	}
	return !s.Rolling && !s.Reveal.Active && !s.WinAnimating
}

// TriggerRoll requests a throw of the unlocked dice. Legal only during
// level play with rolls left and no hand selected. The trigger counter is
// what the physics collaborator consumes; the engine then waits in the
// rolling holding state until CompleteRoll.
func (s GameState) TriggerRoll() (GameState, bool) {
	if !s.canAct() || s.Selected != entities.HandNone {
		return s, false
	}
	if s.Hand.RollsRemaining <= 0 {
		return s, false
	}
	s.Hand.RollsRemaining--
	s.Hand.HasRolled = true
	s.Level.RollsUsed++
	s.Rolling = true
	s.RollTrigger++
	return s, true
}

// CompleteRoll commits the settled face values reported by the physics
// collaborator. Locked dice keep their previous value regardless of what
// was reported. Once the roll budget is spent all locks are released, since
// locking is meaningless with no rolls left.
func (s GameState) CompleteRoll(values [entities.NumDice]int) (GameState, bool) {
	if !s.Rolling {
		return s, false
	}
	for _, v := range values {
		if v < 1 || v > entities.NumFaces {
			return s, false
		}
	}
	for i, v := range values {
		if !s.Dice.Locked[i] {
			s.Dice.Values[i] = v
		}
	}
	s.Rolling = false
	if s.Hand.RollsRemaining == 0 {
		s.Dice = s.Dice.Unlock()
	}
	return s, true
}

// ToggleDiceLock flips the lock on one die. Legal after at least one roll
// this hand, while not rolling, with no hand selected.
func (s GameState) ToggleDiceLock(die int) (GameState, bool) {
	if !s.canAct() || s.Selected != entities.HandNone {
		return s, false
	}
	if !s.Hand.HasRolled {
		return s, false
	}
	if die < 0 || die >= entities.NumDice {
		return s, false
	}
	s.Dice.Locked[die] = !s.Dice.Locked[die]
	return s, true
}

// SelectHand picks the hand to score. The hand must score above zero on the
// current dice and must not have been used this level.
func (s GameState) SelectHand(hand entities.Hand) (GameState, bool) {
	if !s.canAct() || s.Selected != entities.HandNone {
		return s, false
	}
	if !s.Hand.HasRolled {
		return s, false
	}
	valid := scoring.ComputeValidHands(s.Dice.Values, s.Level.UsedHands)
	if !valid.Contains(hand) {
		return s, false
	}
	s.Selected = hand
	return s, true
}

// DeselectHand clears the pending hand choice. A no-op when nothing is
// selected or the choice was already accepted into a reveal.
func (s GameState) DeselectHand() (GameState, bool) {
	if s.Selected == entities.HandNone || s.Reveal.Active {
		return s, false
	}
	s.Selected = entities.HandNone
	return s, true
}

// AcceptHand snapshots the scoring breakdown for the selected hand, unlocks
// the dice, and starts the reveal sequence. The score is not committed yet;
// FinalizeHand does that once the reveal has run.
func (s GameState) AcceptHand() (GameState, bool) {
	if s.Phase != entities.PhaseLevelPlay || s.Rolling || s.Reveal.Active {
		return s, false
	}
	if s.Selected == entities.HandNone {
		return s, false
	}
	breakdown := scoring.ComputeScore(
		s.Selected,
		s.Dice.Values,
		s.Run.HandLevels.Level(s.Selected),
		s.Run.Enhancements,
	)
	if !breakdown.Valid {
		return s, false
	}
	s.Dice = s.Dice.Unlock()
	s.Reveal = RevealState{Active: true, Breakdown: breakdown}
	return s, true
}

// UpdateReveal advances the reveal to the given step. Steps only move
// forward and clamp to the contribution count. The reveal can be left
// paused at any step for as long as the caller likes.
func (s GameState) UpdateReveal(step int) (GameState, bool) {
	if !s.Reveal.Active {
		return s, false
	}
	if n := len(s.Reveal.Breakdown.Contributions); step > n {
		step = n
	}
	if step <= s.Reveal.Step {
		return s, false
	}
	s.Reveal.Step = step
	return s, true
}

// FinalizeHand commits the revealed breakdown: the score lands, the hand is
// spent, and the level end conditions are evaluated. Out of hands under the
// goal loses the run; reaching the goal marks the level won, fires the
// one-shot win animation lock, and stays in level play so the player can
// keep scoring or cash out.
func (s GameState) FinalizeHand() (GameState, bool) {
	if !s.Reveal.Active {
		return s, false
	}
	breakdown := s.Reveal.Breakdown

	s.Level.Score += breakdown.FinalScore
	s.Level.HandsRemaining--
	s.Level.UsedHands = s.Level.UsedHands.With(breakdown.Hand)
	s.Selected = entities.HandNone
	s.Reveal = RevealState{}

	if s.Level.HandsRemaining <= 0 && s.Level.Score < s.Level.Goal {
		s.Phase = entities.PhaseLoseScreen
		return s, true
	}
	if s.Level.Score >= s.Level.Goal && !s.LevelWon {
		s.LevelWon = true
		s.WinAnimating = true
	}
	if s.Level.HandsRemaining > 0 {
		s.Hand = entities.NewHandAttempt()
	} else {
		// Out of hands on a won level: exhaust the attempt so rolling and
		// selecting are rejected and only CashOutNow remains.
		s.Hand = entities.HandAttempt{}
	}
	return s, true
}

// ClearWinAnimation releases the one-shot win animation lock. The UI calls
// this when its animation completes.
func (s GameState) ClearWinAnimation() (GameState, bool) {
	if !s.WinAnimating {
		return s, false
	}
	s.WinAnimating = false
	return s, true
}

// CashOutNow banks a won level and moves to the result screen.
func (s GameState) CashOutNow() (GameState, bool) {
	if s.Phase != entities.PhaseLevelPlay || !s.LevelWon {
		return s, false
	}
	if s.Rolling || s.Reveal.Active || s.WinAnimating {
		return s, false
	}
	s.Phase = entities.PhaseLevelResult
	return s, true
}
