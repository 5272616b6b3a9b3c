// Package roller produces settled face values for the table dice. It is
// the stand-in for the physics collaborator: anything that needs finished
// dice without a 3D simulation (the CLI client, headless tests) rolls here
// and reports the result back through CompleteRoll.
package roller

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/rollrogue/rollrogue-api/internal/entities"
	"github.com/rollrogue/rollrogue-api/internal/errors"
)

// Table rolls the five table dice, honoring locks.
type Table struct {
	roller dice.Roller
}

// New creates a table roller on top of the given dice roller.
func New(r dice.Roller) *Table {
	return &Table{roller: r}
}

// Settle returns the post-roll face values: locked dice keep their current
// value, unlocked dice get a fresh face each.
func (t *Table) Settle(current entities.DiceState) ([entities.NumDice]int, error) {
	values := current.Values
	for i := range values {
		if current.Locked[i] {
			continue
		}
		face, err := t.roller.Roll(entities.NumFaces)
		if err != nil {
			return values, errors.Wrap(err, "failed to roll die")
		}
		values[i] = face
	}
	return values, nil
}
