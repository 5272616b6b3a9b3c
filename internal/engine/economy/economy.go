// Package economy implements the money rules: upgrade cost curves, end-of-
// level reward computation, and the two random shop draws. Cost and reward
// functions are pure; the draws take an injected dice.Roller so tests can
// pin outcomes.
package economy

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/rollrogue/rollrogue-api/internal/engine/enhance"
	"github.com/rollrogue/rollrogue-api/internal/entities"
	"github.com/rollrogue/rollrogue-api/internal/errors"
)

const (
	// Hand upgrade cost curve: base price plus a step per level already owned.
	handUpgradeBase = 10
	handUpgradeStep = 5

	// Fixed dice upgrade prices. Mult pips pay out harder, so they cost more.
	pointsUpgradeCost = 15
	multUpgradeCost   = 25

	// Reward shape: per-level base, bonus per unused hand, bonus per unused
	// roll, and the goal-overshoot tier bonuses.
	rewardBase          = 10
	rewardPerLevel      = 2
	rewardPerUnusedHand = 3
	rewardPerUnusedRoll = 1
	overshootDoubleBonus = 10
	overshootTripleBonus = 25

	// Weighted dice-offer draw: points on 1..pointsOfferWeight of d100.
	pointsOfferWeight = 80

	upgradeOptionCount = 3
)

// UpgradeCost returns the price of raising a hand from its current level to
// the next. Strictly increasing in level, never negative.
func UpgradeCost(currentLevel int) int {
	if currentLevel < 1 {
		currentLevel = 1
	}
	return handUpgradeBase + handUpgradeStep*(currentLevel-1)
}

// DiceUpgradeCost returns the fixed price of a dice upgrade type.
func DiceUpgradeCost(t entities.EnhancementType) int {
	switch t {
	case entities.EnhancementPoints:
		return pointsUpgradeCost
	case entities.EnhancementMult:
		return multUpgradeCost
	case entities.EnhancementNone:
		return 0
	}
	return 0
}

// RewardInput carries everything the end-of-level payout depends on.
type RewardInput struct {
	CurrentMoney   int
	LevelIndex     int
	Score          int
	Goal           int
	HandsRemaining int
	RollsUsed      int
}

// RewardBreakdown itemizes the payout. NewMoney is CurrentMoney plus the
// sum of every bonus.
type RewardBreakdown struct {
	Base       int `json:"base"`
	HandsBonus int `json:"hands_bonus"`
	RollsBonus int `json:"rolls_bonus"`
	TierBonus  int `json:"tier_bonus"`
	Total      int `json:"total"`
	NewMoney   int `json:"new_money"`
}

// CalculateRewards computes the end-of-level payout. Monotonic in unused
// hands and unused rolls: leaving more budget on the table never pays less.
func CalculateRewards(input RewardInput) RewardBreakdown {
	b := RewardBreakdown{
		Base: rewardBase + rewardPerLevel*input.LevelIndex,
	}
	if input.HandsRemaining > 0 {
		b.HandsBonus = rewardPerUnusedHand * input.HandsRemaining
	}
	maxRolls := entities.HandsPerLevel * entities.RollsPerHand
	if unused := maxRolls - input.RollsUsed; unused > 0 {
		b.RollsBonus = rewardPerUnusedRoll * unused
	}
	if input.Goal > 0 {
		switch {
		case input.Score >= 3*input.Goal:
			b.TierBonus = overshootTripleBonus
		case input.Score >= 2*input.Goal:
			b.TierBonus = overshootDoubleBonus
		}
	}
	b.Total = b.Base + b.HandsBonus + b.RollsBonus + b.TierBonus
	b.NewMoney = input.CurrentMoney + b.Total
	return b
}

// RandomUpgradeOptions draws three distinct hands from the full hand set,
// without replacement, to populate the upgrade-pick phase.
func RandomUpgradeOptions(roller dice.Roller) ([upgradeOptionCount]entities.Hand, error) {
	var options [upgradeOptionCount]entities.Hand

	pool := make([]entities.Hand, 0, entities.NumHands)
	for _, h := range entities.AllHands() {
		pool = append(pool, h)
	}
	for i := 0; i < upgradeOptionCount; i++ {
		pick, err := roller.Roll(len(pool))
		if err != nil {
			return options, errors.Wrap(err, "failed to draw upgrade option")
		}
		idx := pick - 1
		options[i] = pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return options, nil
}

// RollDiceOffer draws the dice upgrade type offered this shop visit: one
// weighted d100, points-heavy. When no die can take another enhancement the
// shop spawns no dice offer and this returns EnhancementNone.
func RollDiceOffer(roller dice.Roller, table entities.EnhancementTable) (entities.EnhancementType, error) {
	if !enhance.HasAnyEnhanceableDie(table) {
		return entities.EnhancementNone, nil
	}
	roll, err := roller.Roll(100)
	if err != nil {
		return entities.EnhancementNone, errors.Wrap(err, "failed to roll dice offer")
	}
	if roll <= pointsOfferWeight {
		return entities.EnhancementPoints, nil
	}
	return entities.EnhancementMult, nil
}
