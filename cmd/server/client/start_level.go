package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
)

var startLevelCmd = &cobra.Command{
	Use:   "start-level <run-id> <level>",
	Short: "Jump a run to a level",
	Long:  `Starts the given level directly. Only forward jumps from a live run are allowed.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runStartLevel,
}

func runStartLevel(cmd *cobra.Command, args []string) error {
	level, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("level must be a number: %w", err)
	}

	resp, err := postAction(args[0], "level/start", &v1alpha1.StartLevelRequest{LevelIndex: level})
	if err != nil {
		return fmt.Errorf("failed to start level: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Cannot start level %d from here\n", level)
	}
	printState(resp.State)
	return nil
}
