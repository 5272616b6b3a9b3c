package v1alpha1

import (
	"github.com/rollrogue/rollrogue-api/internal/engine/phase"
	"github.com/rollrogue/rollrogue-api/internal/engine/scoring"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// toStateView converts an engine snapshot into its wire shape.
func toStateView(s phase.GameState) *StateView {
	view := &StateView{
		RunID:          s.Run.ID,
		Phase:          s.Phase.String(),
		Money:          s.Run.Money,
		LevelIndex:     s.Run.LevelIndex,
		Goal:           s.Level.Goal,
		Score:          s.Level.Score,
		HandsRemaining: s.Level.HandsRemaining,
		RollsUsed:      s.Level.RollsUsed,
		RollsRemaining: s.Hand.RollsRemaining,
		HasRolled:      s.Hand.HasRolled,
		HandLevels:     make(map[string]int, entities.NumHands),
		Rolling:        s.Rolling,
		RollTrigger:    s.RollTrigger,
		LevelWon:       s.LevelWon,
		WinAnimating:   s.WinAnimating,
		OverviewOpen:   s.OverviewOpen,
	}

	for i := range view.Dice {
		view.Dice[i] = toDieView(s, i)
	}
	for _, hand := range entities.AllHands() {
		view.HandLevels[hand.String()] = s.Run.HandLevels.Level(hand)
	}
	view.UsedHands = handNames(s.Level.UsedHands)
	if s.Phase == entities.PhaseLevelPlay && s.Hand.HasRolled && !s.Rolling {
		view.ValidHands = handNames(scoring.ComputeValidHands(s.Dice.Values, s.Level.UsedHands))
	}
	if s.Selected != entities.HandNone {
		view.SelectedHand = s.Selected.String()
	}
	if s.Reveal.Active {
		view.Reveal = toRevealView(s.Reveal)
	}

	switch s.Phase {
	case entities.PhaseShopMain, entities.PhaseShopPickUpgrade,
		entities.PhaseDiceEditorDie, entities.PhaseDiceEditorFace:
		view.Shop = toShopView(s)
	case entities.PhaseLevelPlay, entities.PhaseLevelResult,
		entities.PhaseWinScreen, entities.PhaseLoseScreen:
	}

	switch s.Phase {
	case entities.PhaseDiceEditorDie, entities.PhaseDiceEditorFace:
		view.Editor = &EditorView{
			PendingType: s.Editor.PendingType.String(),
			Die:         s.Editor.Die,
			Face:        s.Editor.Face,
		}
	case entities.PhaseLevelPlay, entities.PhaseLevelResult,
		entities.PhaseShopMain, entities.PhaseShopPickUpgrade,
		entities.PhaseWinScreen, entities.PhaseLoseScreen:
	}

	return view
}

func toDieView(s phase.GameState, die int) DieView {
	view := DieView{
		Value:  s.Dice.Values[die],
		Locked: s.Dice.Locked[die],
	}
	for face := 1; face <= entities.NumFaces; face++ {
		pips := make([]string, entities.FacePipCount(face))
		for slot := range pips {
			switch s.Run.Enhancements[die][face-1][slot] {
			case entities.PipPoints:
				pips[slot] = "points"
			case entities.PipMult:
				pips[slot] = "mult"
			case entities.PipNone:
				pips[slot] = "none"
			}
		}
		view.Faces[face-1] = pips
	}
	return view
}

func toRevealView(r phase.RevealState) *RevealView {
	view := &RevealView{
		Hand:       r.Breakdown.Hand.String(),
		HandLevel:  r.Breakdown.HandLevel,
		Step:       r.Step,
		FixedBase:  r.Breakdown.FixedBase,
		Multiplier: r.Breakdown.Multiplier,
		Subtotal:   r.Breakdown.Subtotal,
		FinalScore: r.Breakdown.FinalScore,
	}
	for _, c := range r.Breakdown.Contributions {
		view.Contributions = append(view.Contributions, ContributionView{
			Die:    c.Die,
			Value:  c.Value,
			Base:   c.Base,
			Points: c.Points,
		})
	}
	return view
}

func toShopView(s phase.GameState) *ShopView {
	view := &ShopView{Rewards: s.Shop.Rewards}
	if s.Shop.DiceOffer != entities.EnhancementNone {
		view.DiceOffer = s.Shop.DiceOffer.String()
	}
	if s.Phase == entities.PhaseShopPickUpgrade {
		for _, option := range s.Shop.Options {
			view.Options = append(view.Options, option.String())
		}
	}
	return view
}

func handNames(set entities.HandSet) []string {
	hands := set.Hands()
	if len(hands) == 0 {
		return nil
	}
	names := make([]string, len(hands))
	for i, h := range hands {
		names[i] = h.String()
	}
	return names
}
