// Package entities defines the core data shapes for the dice-run game:
// hands, phases, the run and level session records, and the per-die
// enhancement tables. It holds data only; rules live under internal/engine.
package entities

// Hand identifies one of the twelve scoring categories. The set is closed:
// six upper number hands plus six lower combination hands.
type Hand int

// Hand constants. Order matters: upper hands come first and map 1:1 onto
// face values (HandOnes scores face 1, HandTwos face 2, and so on).
const (
	HandOnes Hand = iota
	HandTwos
	HandThrees
	HandFours
	HandFives
	HandSixes
	HandThreeOfAKind
	HandFourOfAKind
	HandFullHouse
	HandSmallStraight
	HandLargeStraight
	HandFiveOfAKind

	// NumHands is the size of the closed hand set.
	NumHands = 12
)

// HandNone is the sentinel for "no hand selected".
const HandNone Hand = -1

var handNames = map[Hand]string{
	HandOnes:          "ones",
	HandTwos:          "twos",
	HandThrees:        "threes",
	HandFours:         "fours",
	HandFives:         "fives",
	HandSixes:         "sixes",
	HandThreeOfAKind:  "three_of_a_kind",
	HandFourOfAKind:   "four_of_a_kind",
	HandFullHouse:     "full_house",
	HandSmallStraight: "small_straight",
	HandLargeStraight: "large_straight",
	HandFiveOfAKind:   "five_of_a_kind",
}

// String returns the wire name of the hand.
func (h Hand) String() string {
	if s, ok := handNames[h]; ok {
		return s
	}
	return "unknown"
}

// IsUpper reports whether the hand is one of the six number hands.
func (h Hand) IsUpper() bool {
	return h >= HandOnes && h <= HandSixes
}

// Face returns the face value an upper hand scores, or 0 for lower hands.
func (h Hand) Face() int {
	if !h.IsUpper() {
		return 0
	}
	return int(h) + 1
}

// Valid reports whether the value names a real hand.
func (h Hand) Valid() bool {
	return h >= HandOnes && h < NumHands
}

// AllHands returns the full hand set in display order.
func AllHands() [NumHands]Hand {
	var hands [NumHands]Hand
	for i := range hands {
		hands[i] = Hand(i)
	}
	return hands
}

// ParseHand maps a wire name back to a Hand. Returns HandNone and false for
// names outside the set.
func ParseHand(name string) (Hand, bool) {
	for h, s := range handNames {
		if s == name {
			return h, true
		}
	}
	return HandNone, false
}

// HandSet is a value-semantics set over the closed hand set.
type HandSet [NumHands]bool

// Contains reports membership. Out-of-range hands are never members.
func (s HandSet) Contains(h Hand) bool {
	if !h.Valid() {
		return false
	}
	return s[h]
}

// With returns a copy of the set with h added.
func (s HandSet) With(h Hand) HandSet {
	if h.Valid() {
		s[h] = true
	}
	return s
}

// Count returns the number of hands in the set.
func (s HandSet) Count() int {
	n := 0
	for _, in := range s {
		if in {
			n++
		}
	}
	return n
}

// Hands returns the members in display order.
func (s HandSet) Hands() []Hand {
	hands := make([]Hand, 0, NumHands)
	for i, in := range s {
		if in {
			hands = append(hands, Hand(i))
		}
	}
	return hands
}
