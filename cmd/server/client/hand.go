package client

import (
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
)

var handCmd = &cobra.Command{
	Use:   "hand",
	Short: "Select and score hands",
}

var handSelectCmd = &cobra.Command{
	Use:   "select <run-id> <hand>",
	Short: "Select a hand to score",
	Args:  cobra.ExactArgs(2),
	RunE:  runHandSelect,
}

var handDeselectCmd = &cobra.Command{
	Use:   "deselect <run-id>",
	Short: "Clear the hand selection",
	Args:  cobra.ExactArgs(1),
	RunE:  runHandDeselect,
}

var handAcceptCmd = &cobra.Command{
	Use:   "accept <run-id>",
	Short: "Score the selected hand",
	Long:  `Accepts the selected hand, walks the score reveal to the end, and finalizes it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHandAccept,
}

func init() {
	handCmd.AddCommand(handSelectCmd)
	handCmd.AddCommand(handDeselectCmd)
	handCmd.AddCommand(handAcceptCmd)
}

func runHandSelect(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "hand/select", &v1alpha1.SelectHandRequest{Hand: args[1]})
	if err != nil {
		return fmt.Errorf("failed to select hand: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Hand %s is not selectable right now\n", args[1])
	}
	printState(resp.State)
	return nil
}

func runHandDeselect(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "hand/deselect", nil)
	if err != nil {
		return fmt.Errorf("failed to deselect hand: %w", err)
	}
	printState(resp.State)
	return nil
}

func runHandAccept(cmd *cobra.Command, args []string) error {
	runID := args[0]

	resp, err := postAction(runID, "hand/accept", nil)
	if err != nil {
		return fmt.Errorf("failed to accept hand: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  No valid hand selected\n")
		printState(resp.State)
		return nil
	}

	// Walk the reveal step by step the way a UI would, then commit it.
	for resp.State.Reveal != nil && resp.State.Reveal.Step < len(resp.State.Reveal.Contributions) {
		step := resp.State.Reveal.Step + 1
		resp, err = postAction(runID, "reveal/update", &v1alpha1.UpdateRevealRequest{Step: step})
		if err != nil {
			return fmt.Errorf("failed to advance reveal: %w", err)
		}
	}
	if resp.State.Reveal != nil {
		fmt.Printf("💯 %s scored %d\n", resp.State.Reveal.Hand, resp.State.Reveal.FinalScore)
	}

	resp, err = postAction(runID, "hand/finalize", nil)
	if err != nil {
		return fmt.Errorf("failed to finalize hand: %w", err)
	}
	printState(resp.State)
	return nil
}
