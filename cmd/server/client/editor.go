package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
)

var editorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Spend a dice offer on a pip enhancement",
}

var editorOpenCmd = &cobra.Command{
	Use:   "open <run-id> <points|mult>",
	Short: "Open the dice editor for the offered upgrade",
	Args:  cobra.ExactArgs(2),
	RunE:  runEditorOpen,
}

var editorDieCmd = &cobra.Command{
	Use:   "die <run-id> <die>",
	Short: "Pick the die to enhance",
	Args:  cobra.ExactArgs(2),
	RunE:  runEditorDie,
}

var editorFaceCmd = &cobra.Command{
	Use:   "face <run-id> <face>",
	Short: "Pick the face to enhance",
	Args:  cobra.ExactArgs(2),
	RunE:  runEditorFace,
}

var editorApplyCmd = &cobra.Command{
	Use:   "apply <run-id>",
	Short: "Buy the enhancement for the chosen face",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditorApply,
}

var editorCancelCmd = &cobra.Command{
	Use:   "cancel <run-id>",
	Short: "Leave the editor without buying",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditorCancel,
}

func init() {
	editorCmd.AddCommand(editorOpenCmd)
	editorCmd.AddCommand(editorDieCmd)
	editorCmd.AddCommand(editorFaceCmd)
	editorCmd.AddCommand(editorApplyCmd)
	editorCmd.AddCommand(editorCancelCmd)
}

func runEditorOpen(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "editor/open", &v1alpha1.OpenDiceEditorRequest{Upgrade: args[1]})
	if err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  No %s offer to spend (or no open pips)\n", args[1])
	}
	printState(resp.State)
	return nil
}

func runEditorDie(cmd *cobra.Command, args []string) error {
	die, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("die must be a number 0-4: %w", err)
	}

	resp, err := postAction(args[0], "editor/die", &v1alpha1.SelectEditorDieRequest{Die: die})
	if err != nil {
		return fmt.Errorf("failed to select die: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Die %d has no open pips\n", die)
	}
	printState(resp.State)
	return nil
}

func runEditorFace(cmd *cobra.Command, args []string) error {
	face, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("face must be a number 1-6: %w", err)
	}

	resp, err := postAction(args[0], "editor/face", &v1alpha1.SelectEditorFaceRequest{Face: face})
	if err != nil {
		return fmt.Errorf("failed to select face: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Face %d is full\n", face)
	}
	printState(resp.State)
	return nil
}

func runEditorApply(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "editor/apply", nil)
	if err != nil {
		return fmt.Errorf("failed to apply enhancement: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Cannot apply (pick a die and face, and check your money)\n")
	} else {
		fmt.Printf("✨ Enhancement applied\n")
	}
	printState(resp.State)
	return nil
}

func runEditorCancel(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "editor/cancel", nil)
	if err != nil {
		return fmt.Errorf("failed to cancel editor: %w", err)
	}
	printState(resp.State)
	return nil
}
