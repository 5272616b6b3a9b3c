package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
)

var lockCmd = &cobra.Command{
	Use:   "lock <run-id> <die>",
	Short: "Toggle a die lock",
	Long:  `Flips the lock on one die (0-4). Locked dice are kept out of the next roll.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runLock,
}

func runLock(cmd *cobra.Command, args []string) error {
	die, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("die must be a number 0-4: %w", err)
	}

	resp, err := postAction(args[0], "dice/lock", &v1alpha1.ToggleLockRequest{Die: die})
	if err != nil {
		return fmt.Errorf("failed to toggle lock: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Lock not allowed right now\n")
	}
	printState(resp.State)
	return nil
}
