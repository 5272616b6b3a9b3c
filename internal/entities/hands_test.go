package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollrogue/rollrogue-api/internal/entities"
)

func TestHandNames(t *testing.T) {
	for _, hand := range entities.AllHands() {
		name := hand.String()
		require.NotEqual(t, "unknown", name)

		parsed, ok := entities.ParseHand(name)
		require.True(t, ok, "round trip for %s", name)
		assert.Equal(t, hand, parsed)
	}

	_, ok := entities.ParseHand("chance")
	assert.False(t, ok)
	assert.Equal(t, "unknown", entities.HandNone.String())
}

func TestHandUpperFace(t *testing.T) {
	assert.True(t, entities.HandOnes.IsUpper())
	assert.True(t, entities.HandSixes.IsUpper())
	assert.False(t, entities.HandThreeOfAKind.IsUpper())

	assert.Equal(t, 1, entities.HandOnes.Face())
	assert.Equal(t, 6, entities.HandSixes.Face())
	assert.Equal(t, 0, entities.HandFullHouse.Face())
}

func TestHandSet(t *testing.T) {
	var set entities.HandSet
	assert.Equal(t, 0, set.Count())
	assert.False(t, set.Contains(entities.HandOnes))

	set = set.With(entities.HandOnes).With(entities.HandFiveOfAKind)
	assert.Equal(t, 2, set.Count())
	assert.True(t, set.Contains(entities.HandOnes))
	assert.True(t, set.Contains(entities.HandFiveOfAKind))
	assert.Equal(t, []entities.Hand{entities.HandOnes, entities.HandFiveOfAKind}, set.Hands())

	// Sentinels never join the set.
	set = set.With(entities.HandNone)
	assert.Equal(t, 2, set.Count())
	assert.False(t, set.Contains(entities.HandNone))
}

func TestPhaseTerminal(t *testing.T) {
	assert.True(t, entities.PhaseWinScreen.Terminal())
	assert.True(t, entities.PhaseLoseScreen.Terminal())
	assert.False(t, entities.PhaseLevelPlay.Terminal())
	assert.False(t, entities.PhaseShopMain.Terminal())
}

func TestLevelGoals(t *testing.T) {
	prev := 0
	for i := 0; i < entities.NumLevels; i++ {
		goal := entities.LevelGoal(i)
		assert.Greater(t, goal, prev, "goals strictly increase")
		prev = goal
	}

	assert.Equal(t, 0, entities.LevelGoal(-1))
	assert.Equal(t, 0, entities.LevelGoal(entities.NumLevels))
	assert.False(t, entities.ValidLevel(entities.NumLevels))
	assert.True(t, entities.ValidLevel(0))
}

func TestFacePipCount(t *testing.T) {
	for face := 1; face <= entities.NumFaces; face++ {
		assert.Equal(t, face, entities.FacePipCount(face))
	}
	assert.Equal(t, 0, entities.FacePipCount(0))
	assert.Equal(t, 0, entities.FacePipCount(7))
}

func TestEnhancementTypeNames(t *testing.T) {
	parsed, ok := entities.ParseEnhancementType("points")
	require.True(t, ok)
	assert.Equal(t, entities.EnhancementPoints, parsed)

	parsed, ok = entities.ParseEnhancementType("mult")
	require.True(t, ok)
	assert.Equal(t, entities.EnhancementMult, parsed)

	_, ok = entities.ParseEnhancementType("none")
	assert.False(t, ok, "the sentinel is not a purchasable type")

	assert.Equal(t, entities.PipPoints, entities.EnhancementPoints.Pip())
	assert.Equal(t, entities.PipMult, entities.EnhancementMult.Pip())
}
