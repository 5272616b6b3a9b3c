package client

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/rollrogue/rollrogue-api/internal/entities"
	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
	"github.com/rollrogue/rollrogue-api/internal/pkg/roller"
)

var rollCmd = &cobra.Command{
	Use:   "roll <run-id>",
	Short: "Roll the unlocked dice",
	Long: `Triggers a roll, settles the unlocked dice locally, and reports the
settled faces back to the server. Locked dice keep their values.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

func runRoll(cmd *cobra.Command, args []string) error {
	runID := args[0]

	resp, err := postAction(runID, "roll/trigger", nil)
	if err != nil {
		return fmt.Errorf("failed to trigger roll: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Roll not allowed right now\n")
		printState(resp.State)
		return nil
	}

	// The server treats dice physics as external; stand in for it here.
	table := roller.New(&dice.CryptoRoller{})
	values, err := table.Settle(diceState(resp.State))
	if err != nil {
		return fmt.Errorf("failed to settle dice: %w", err)
	}

	resp, err = postAction(runID, "roll/complete", &v1alpha1.CompleteRollRequest{Values: values[:]})
	if err != nil {
		return fmt.Errorf("failed to complete roll: %w", err)
	}

	fmt.Printf("🎲 Rolled!\n")
	printState(resp.State)
	return nil
}

// diceState rebuilds the engine dice state from a wire snapshot
func diceState(state *v1alpha1.StateView) entities.DiceState {
	var ds entities.DiceState
	for i, die := range state.Dice {
		ds.Values[i] = die.Value
		ds.Locked[i] = die.Locked
	}
	return ds
}
