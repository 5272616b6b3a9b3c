// Package enhance implements the per-die pip enhancement rules: which faces
// can still take an upgrade and how an upgrade commits into the table.
// Everything here is a pure function over entities.EnhancementTable values;
// Apply returns a new table so callers can preview without committing.
package enhance

import (
	"github.com/rollrogue/rollrogue-api/internal/entities"
)

// IsFaceEnhanceable reports whether the given face of the given die has at
// least one open pip slot. Out-of-range indices are never enhanceable.
func IsFaceEnhanceable(table entities.EnhancementTable, die, face int) bool {
	return nextOpenPip(table, die, face) >= 0
}

// IsDieEnhanceable reports whether any face of the given die has an open
// pip slot.
func IsDieEnhanceable(table entities.EnhancementTable, die int) bool {
	for face := 1; face <= entities.NumFaces; face++ {
		if IsFaceEnhanceable(table, die, face) {
			return true
		}
	}
	return false
}

// HasAnyEnhanceableDie reports whether any die on the table can still take
// an upgrade. The shop uses this to gate the dice offer.
func HasAnyEnhanceableDie(table entities.EnhancementTable) bool {
	for die := 0; die < entities.NumDice; die++ {
		if IsDieEnhanceable(table, die) {
			return true
		}
	}
	return false
}

// Apply commits one enhancement of the given type to the next open pip slot
// of the face, returning the new table and true. Slots fill in a fixed
// order; the player never picks a slot. The input table is left untouched.
// Returns the input unchanged and false when the face has no open slot or
// any argument is out of range.
func Apply(
	table entities.EnhancementTable,
	die, face int,
	enhancement entities.EnhancementType,
) (entities.EnhancementTable, bool) {
	if enhancement != entities.EnhancementPoints && enhancement != entities.EnhancementMult {
		return table, false
	}
	slot := nextOpenPip(table, die, face)
	if slot < 0 {
		return table, false
	}
	table[die][face-1][slot] = enhancement.Pip()
	return table, true
}

// PipCounts returns how many points pips and mult pips are set on the given
// face of the given die.
func PipCounts(table entities.EnhancementTable, die, face int) (points, mult int) {
	if die < 0 || die >= entities.NumDice || entities.FacePipCount(face) == 0 {
		return 0, 0
	}
	for _, pip := range table[die][face-1] {
		switch pip {
		case entities.PipPoints:
			points++
		case entities.PipMult:
			mult++
		case entities.PipNone:
		}
	}
	return points, mult
}

// nextOpenPip returns the index of the first PipNone slot among the slots
// the face physically has, or -1 when the face is full or out of range.
func nextOpenPip(table entities.EnhancementTable, die, face int) int {
	if die < 0 || die >= entities.NumDice {
		return -1
	}
	capacity := entities.FacePipCount(face)
	if capacity == 0 {
		return -1
	}
	for slot := 0; slot < capacity; slot++ {
		if table[die][face-1][slot] == entities.PipNone {
			return slot
		}
	}
	return -1
}
