// Package scoring implements hand evaluation: given five settled faces, a
// hand, its level, and the enhancement table, it computes the score and a
// per-die breakdown. Every function is pure and deterministic; identical
// inputs always produce identical output, so callers are free to recompute
// for previews and re-renders.
package scoring

import (
	"github.com/rollrogue/rollrogue-api/internal/engine/enhance"
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// PointsPerPip is the flat score each points pip adds when its die scores.
const PointsPerPip = 2

// Level-scaled fixed bases for the pattern hands.
const (
	baseFullHouse     = 25
	baseSmallStraight = 30
	baseLargeStraight = 40
	baseFiveOfAKind   = 50
)

// Contribution is one die's share of a score. The reveal animation walks
// these in order, so the ordering is part of the contract: contributing dice
// appear left to right by physical slot.
type Contribution struct {
	// Die is the physical slot index, 0..4 left to right.
	Die int `json:"die"`

	// Value is the face the die showed.
	Value int `json:"value"`

	// Base is the level-scaled score the die itself contributes.
	Base int `json:"base"`

	// Points is the flat bonus from points pips on the shown face.
	Points int `json:"points"`
}

// Breakdown explains a computed score. FinalScore is always recomputable as
// (FixedBase + sum of contribution bases and points) * Multiplier.
type Breakdown struct {
	Hand      entities.Hand  `json:"hand"`
	HandLevel int            `json:"hand_level"`
	Valid     bool           `json:"valid"`

	// FixedBase is the level-scaled pattern base (full house, straights,
	// five of a kind). Zero for hands scored per die.
	FixedBase int `json:"fixed_base"`

	// Contributions lists the scoring dice left to right by slot.
	Contributions []Contribution `json:"contributions"`

	// Multiplier is 1 plus one per mult pip on the scoring dice.
	Multiplier int `json:"multiplier"`

	// Subtotal is the pre-multiplier sum.
	Subtotal int `json:"subtotal"`

	// FinalScore is Subtotal * Multiplier, or 0 for an invalid hand.
	FinalScore int `json:"final_score"`
}

// ComputeScore evaluates one hand against the dice. Invalid hands come back
// with Valid false and FinalScore 0. The contribution list is ordered by
// slot index ascending; that ordering drives the reveal and is observable,
// so it never changes.
func ComputeScore(
	hand entities.Hand,
	values [entities.NumDice]int,
	handLevel int,
	table entities.EnhancementTable,
) Breakdown {
	b := Breakdown{
		Hand:       hand,
		HandLevel:  handLevel,
		Multiplier: 1,
	}
	if !hand.Valid() || handLevel < 1 {
		return b
	}

	scoring, fixedBase := scoringDice(hand, values)
	if scoring == nil {
		return b
	}

	b.Valid = true
	b.FixedBase = fixedBase * handLevel
	b.Subtotal = b.FixedBase
	for _, die := range scoring {
		value := values[die]
		c := Contribution{Die: die, Value: value}
		if fixedBase == 0 {
			c.Base = value * handLevel
		}
		points, mult := enhance.PipCounts(table, die, value)
		c.Points = points * PointsPerPip
		b.Multiplier += mult
		b.Subtotal += c.Base + c.Points
		b.Contributions = append(b.Contributions, c)
	}
	b.FinalScore = b.Subtotal * b.Multiplier
	return b
}

// ComputeValidHands returns the hands that would score above zero on the
// current dice and were not already used this level.
func ComputeValidHands(values [entities.NumDice]int, used entities.HandSet) entities.HandSet {
	var valid entities.HandSet
	for _, hand := range entities.AllHands() {
		if used.Contains(hand) {
			continue
		}
		if scoring, _ := scoringDice(hand, values); scoring != nil {
			valid = valid.With(hand)
		}
	}
	return valid
}

// scoringDice returns the slots of the dice that score for the hand, in
// ascending slot order, plus the unscaled fixed base for pattern hands.
// A nil slice means the hand does not score on these dice.
func scoringDice(hand entities.Hand, values [entities.NumDice]int) ([]int, int) {
	counts := faceCounts(values)

	switch hand {
	case entities.HandOnes, entities.HandTwos, entities.HandThrees,
		entities.HandFours, entities.HandFives, entities.HandSixes:
		face := hand.Face()
		if counts[face] == 0 {
			return nil, 0
		}
		return diceShowing(values, face), 0

	case entities.HandThreeOfAKind:
		if maxCount(counts) < 3 {
			return nil, 0
		}
		return allDice(), 0

	case entities.HandFourOfAKind:
		if maxCount(counts) < 4 {
			return nil, 0
		}
		return allDice(), 0

	case entities.HandFullHouse:
		if !isFullHouse(counts) {
			return nil, 0
		}
		return allDice(), baseFullHouse

	case entities.HandSmallStraight:
		run := findRun(counts, 4)
		if run == nil {
			return nil, 0
		}
		return runDice(values, run), baseSmallStraight

	case entities.HandLargeStraight:
		run := findRun(counts, 5)
		if run == nil {
			return nil, 0
		}
		return runDice(values, run), baseLargeStraight

	case entities.HandFiveOfAKind:
		if maxCount(counts) < entities.NumDice {
			return nil, 0
		}
		return allDice(), baseFiveOfAKind
	}
	return nil, 0
}

// faceCounts returns how many dice show each face, indexed by face value.
func faceCounts(values [entities.NumDice]int) [entities.NumFaces + 1]int {
	var counts [entities.NumFaces + 1]int
	for _, v := range values {
		if v >= 1 && v <= entities.NumFaces {
			counts[v]++
		}
	}
	return counts
}

func maxCount(counts [entities.NumFaces + 1]int) int {
	best := 0
	for _, c := range counts[1:] {
		if c > best {
			best = c
		}
	}
	return best
}

// isFullHouse requires a distinct triple and pair; five of a kind is its own
// hand and does not double as a full house.
func isFullHouse(counts [entities.NumFaces + 1]int) bool {
	hasTriple, hasPair := false, false
	for _, c := range counts[1:] {
		switch c {
		case 3:
			hasTriple = true
		case 2:
			hasPair = true
		}
	}
	return hasTriple && hasPair
}

// findRun returns the lowest consecutive run of the given length present on
// the dice, or nil. Checking lowest-first makes the matched pattern, and so
// the breakdown, deterministic.
func findRun(counts [entities.NumFaces + 1]int, length int) []int {
	for start := 1; start+length-1 <= entities.NumFaces; start++ {
		run := make([]int, 0, length)
		for face := start; face < start+length; face++ {
			if counts[face] == 0 {
				run = nil
				break
			}
			run = append(run, face)
		}
		if run != nil {
			return run
		}
	}
	return nil
}

// runDice picks one die per run value, leftmost slot on duplicates, and
// returns the slots in ascending order.
func runDice(values [entities.NumDice]int, run []int) []int {
	dice := make([]int, 0, len(run))
	for _, face := range run {
		for i, v := range values {
			if v == face {
				dice = append(dice, i)
				break
			}
		}
	}
	sortInts(dice)
	return dice
}

func diceShowing(values [entities.NumDice]int, face int) []int {
	var dice []int
	for i, v := range values {
		if v == face {
			dice = append(dice, i)
		}
	}
	return dice
}

func allDice() []int {
	dice := make([]int, entities.NumDice)
	for i := range dice {
		dice[i] = i
	}
	return dice
}

// sortInts is an insertion sort; the slices here hold at most five slots.
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
