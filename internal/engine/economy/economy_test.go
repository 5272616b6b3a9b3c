package economy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollrogue/rollrogue-api/internal/engine/economy"
	"github.com/rollrogue/rollrogue-api/internal/engine/enhance"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// seqRoller feeds back a scripted sequence of rolls.
type seqRoller struct {
	rolls []int
	next  int
}

// Minimal implementation to satisfy dice.Roller interface
func (s *seqRoller) Roll(_ int) (int, error) {
	v := s.rolls[s.next]
	s.next++
	return v, nil
}
func (s *seqRoller) RollN(_, _ int) ([]int, error) { return nil, nil }

func TestUpgradeCost(t *testing.T) {
	assert.Equal(t, 10, economy.UpgradeCost(1))
	assert.Equal(t, 15, economy.UpgradeCost(2))
	assert.Equal(t, 20, economy.UpgradeCost(3))
	assert.Equal(t, 10, economy.UpgradeCost(0), "below-range level prices like level 1")

	for level := 1; level < 20; level++ {
		assert.Less(t, economy.UpgradeCost(level), economy.UpgradeCost(level+1),
			"cost must strictly increase")
	}
}

func TestDiceUpgradeCost(t *testing.T) {
	points := economy.DiceUpgradeCost(entities.EnhancementPoints)
	mult := economy.DiceUpgradeCost(entities.EnhancementMult)

	assert.Equal(t, 15, points)
	assert.Equal(t, 25, mult)
	assert.Greater(t, mult, points, "mult pips cost more than points pips")
	assert.Equal(t, 0, economy.DiceUpgradeCost(entities.EnhancementNone))
}

func TestCalculateRewards(t *testing.T) {
	t.Run("itemizes the payout", func(t *testing.T) {
		b := economy.CalculateRewards(economy.RewardInput{
			CurrentMoney:   5,
			LevelIndex:     2,
			Score:          110,
			Goal:           100,
			HandsRemaining: 2,
			RollsUsed:      10,
		})

		assert.Equal(t, 14, b.Base)
		assert.Equal(t, 6, b.HandsBonus)
		assert.Equal(t, 8, b.RollsBonus)
		assert.Equal(t, 0, b.TierBonus)
		assert.Equal(t, 28, b.Total)
		assert.Equal(t, 33, b.NewMoney)
	})

	t.Run("overshoot tiers", func(t *testing.T) {
		input := economy.RewardInput{LevelIndex: 0, Goal: 50, RollsUsed: 18}

		input.Score = 99
		assert.Equal(t, 0, economy.CalculateRewards(input).TierBonus)

		input.Score = 100
		assert.Equal(t, 10, economy.CalculateRewards(input).TierBonus)

		input.Score = 150
		assert.Equal(t, 25, economy.CalculateRewards(input).TierBonus)
	})

	t.Run("spent budgets never go negative", func(t *testing.T) {
		b := economy.CalculateRewards(economy.RewardInput{
			LevelIndex:     0,
			Score:          50,
			Goal:           50,
			HandsRemaining: 0,
			RollsUsed:      entities.HandsPerLevel * entities.RollsPerHand,
		})

		assert.Equal(t, 0, b.HandsBonus)
		assert.Equal(t, 0, b.RollsBonus)
		assert.Equal(t, b.Base, b.Total)
	})

	t.Run("monotonic in unused budget", func(t *testing.T) {
		base := economy.RewardInput{LevelIndex: 3, Score: 140, Goal: 140, RollsUsed: 12}

		prev := -1
		for hands := 0; hands <= entities.HandsPerLevel; hands++ {
			input := base
			input.HandsRemaining = hands
			total := economy.CalculateRewards(input).Total
			assert.Greater(t, total, prev)
			prev = total
		}
	})
}

func TestRandomUpgradeOptions(t *testing.T) {
	t.Run("three distinct hands", func(t *testing.T) {
		roller := &seqRoller{rolls: []int{1, 1, 1}}
		options, err := economy.RandomUpgradeOptions(roller)

		require.NoError(t, err)
		// Drawing slot 1 three times without replacement walks the pool head.
		assert.Equal(t, entities.HandOnes, options[0])
		assert.Equal(t, entities.HandTwos, options[1])
		assert.Equal(t, entities.HandThrees, options[2])
	})

	t.Run("draws from the tail too", func(t *testing.T) {
		roller := &seqRoller{rolls: []int{12, 11, 10}}
		options, err := economy.RandomUpgradeOptions(roller)

		require.NoError(t, err)
		assert.Equal(t, entities.HandFiveOfAKind, options[0])
		assert.Equal(t, entities.HandLargeStraight, options[1])
		assert.Equal(t, entities.HandSmallStraight, options[2])
	})
}

func TestRollDiceOffer(t *testing.T) {
	t.Run("points on low rolls", func(t *testing.T) {
		offer, err := economy.RollDiceOffer(&seqRoller{rolls: []int{1}}, entities.EnhancementTable{})
		require.NoError(t, err)
		assert.Equal(t, entities.EnhancementPoints, offer)

		offer, err = economy.RollDiceOffer(&seqRoller{rolls: []int{80}}, entities.EnhancementTable{})
		require.NoError(t, err)
		assert.Equal(t, entities.EnhancementPoints, offer)
	})

	t.Run("mult on high rolls", func(t *testing.T) {
		offer, err := economy.RollDiceOffer(&seqRoller{rolls: []int{81}}, entities.EnhancementTable{})
		require.NoError(t, err)
		assert.Equal(t, entities.EnhancementMult, offer)

		offer, err = economy.RollDiceOffer(&seqRoller{rolls: []int{100}}, entities.EnhancementTable{})
		require.NoError(t, err)
		assert.Equal(t, entities.EnhancementMult, offer)
	})

	t.Run("no offer on a full table", func(t *testing.T) {
		var table entities.EnhancementTable
		for die := 0; die < entities.NumDice; die++ {
			for face := 1; face <= entities.NumFaces; face++ {
				for enhance.IsFaceEnhanceable(table, die, face) {
					table, _ = enhance.Apply(table, die, face, entities.EnhancementMult)
				}
			}
		}

		offer, err := economy.RollDiceOffer(&seqRoller{}, table)
		require.NoError(t, err)
		assert.Equal(t, entities.EnhancementNone, offer, "full dice spawn no offer")
	})
}
