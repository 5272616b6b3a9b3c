package phase

import (
	"github.com/rollrogue/rollrogue-api/internal/engine/economy"
	"github.com/rollrogue/rollrogue-api/internal/engine/enhance"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// OpenShop applies the end-of-level payout and enters the shop. The reward
// breakdown and the dice offer for this visit are drawn by the caller (they
// are the only random inputs) and committed here atomically.
func (s GameState) OpenShop(
	rewards economy.RewardBreakdown,
	offer entities.EnhancementType,
) (GameState, bool) {
	if s.Phase != entities.PhaseLevelResult {
		return s, false
	}
	s.Run.Money = rewards.NewMoney
	s.Shop = ShopState{Rewards: rewards, DiceOffer: offer}
	s.Editor = clearedEditor()
	s.Phase = entities.PhaseShopMain
	return s, true
}

// SelectUpgradeItem opens the hand-upgrade pick with the three drawn
// options.
func (s GameState) SelectUpgradeItem(options [3]entities.Hand) (GameState, bool) {
	if s.Phase != entities.PhaseShopMain {
		return s, false
	}
	s.Shop.Options = options
	s.Phase = entities.PhaseShopPickUpgrade
	return s, true
}

// PickUpgradeHand buys one level for the chosen hand. The hand must be one
// of the offered options and the run must afford the cost; otherwise
// nothing changes, no partial deduction ever happens.
func (s GameState) PickUpgradeHand(hand entities.Hand) (GameState, bool) {
	if s.Phase != entities.PhaseShopPickUpgrade {
		return s, false
	}
	offered := false
	for _, option := range s.Shop.Options {
		if option == hand {
			offered = true
			break
		}
	}
	if !offered || !hand.Valid() {
		return s, false
	}
	cost := economy.UpgradeCost(s.Run.HandLevels.Level(hand))
	if s.Run.Money < cost {
		return s, false
	}
	s.Run.Money -= cost
	s.Run.HandLevels[hand]++
	s.Phase = entities.PhaseShopMain
	return s, true
}

// CancelUpgradePick backs out of the upgrade pick without buying.
func (s GameState) CancelUpgradePick() (GameState, bool) {
	if s.Phase != entities.PhaseShopPickUpgrade {
		return s, false
	}
	s.Phase = entities.PhaseShopMain
	return s, true
}

// OpenDiceEditor enters the dice editor for the pending dice offer. The
// requested type must match the offer drawn for this shop visit and some
// die must still be enhanceable.
func (s GameState) OpenDiceEditor(upgrade entities.EnhancementType) (GameState, bool) {
	if s.Phase != entities.PhaseShopMain {
		return s, false
	}
	if upgrade == entities.EnhancementNone || upgrade != s.Shop.DiceOffer {
		return s, false
	}
	if !enhance.HasAnyEnhanceableDie(s.Run.Enhancements) {
		return s, false
	}
	s.Editor = EditorState{PendingType: upgrade, Die: -1}
	s.Phase = entities.PhaseDiceEditorDie
	return s, true
}

// SelectEditorDie picks the die to enhance. The die must have at least one
// enhanceable face.
func (s GameState) SelectEditorDie(die int) (GameState, bool) {
	if s.Phase != entities.PhaseDiceEditorDie {
		return s, false
	}
	if !enhance.IsDieEnhanceable(s.Run.Enhancements, die) {
		return s, false
	}
	s.Editor.Die = die
	s.Editor.Face = 0
	s.Phase = entities.PhaseDiceEditorFace
	return s, true
}

// SelectEditorFace picks the face to enhance on the selected die.
func (s GameState) SelectEditorFace(face int) (GameState, bool) {
	if s.Phase != entities.PhaseDiceEditorFace || s.Editor.Die < 0 {
		return s, false
	}
	if !enhance.IsFaceEnhanceable(s.Run.Enhancements, s.Editor.Die, face) {
		return s, false
	}
	s.Editor.Face = face
	return s, true
}

// ApplyDiceUpgrade commits the pending enhancement onto the selected face,
// pays for it, consumes the shop's dice offer, and returns to the shop. A
// full face or an unaffordable price is a no-op even with everything else
// in order.
func (s GameState) ApplyDiceUpgrade() (GameState, bool) {
	if s.Phase != entities.PhaseDiceEditorFace {
		return s, false
	}
	if s.Editor.Die < 0 || s.Editor.Face == 0 {
		return s, false
	}
	cost := economy.DiceUpgradeCost(s.Editor.PendingType)
	if cost == 0 || s.Run.Money < cost {
		return s, false
	}
	table, ok := enhance.Apply(s.Run.Enhancements, s.Editor.Die, s.Editor.Face, s.Editor.PendingType)
	if !ok {
		return s, false
	}
	s.Run.Enhancements = table
	s.Run.Money -= cost
	s.Shop.DiceOffer = entities.EnhancementNone
	s.Editor = clearedEditor()
	s.Phase = entities.PhaseShopMain
	return s, true
}

// CancelDiceEditor leaves the editor without buying. The dice offer stays
// available for the rest of the visit.
func (s GameState) CancelDiceEditor() (GameState, bool) {
	switch s.Phase {
	case entities.PhaseDiceEditorDie, entities.PhaseDiceEditorFace:
	case entities.PhaseLevelPlay, entities.PhaseLevelResult, entities.PhaseShopMain,
		entities.PhaseShopPickUpgrade, entities.PhaseWinScreen, entities.PhaseLoseScreen:
		return s, false
	default:
		return s, false
	}
	s.Editor = clearedEditor()
	s.Phase = entities.PhaseShopMain
	return s, true
}

// CloseShopNextLevel leaves the shop for the next level, or for the win
// screen when the cleared level was the last one.
func (s GameState) CloseShopNextLevel() (GameState, bool) {
	if s.Phase != entities.PhaseShopMain {
		return s, false
	}
	next := s.Run.LevelIndex + 1
	if !entities.ValidLevel(next) {
		s.Phase = entities.PhaseWinScreen
		return s, true
	}
	return s.startLevel(next)
}
