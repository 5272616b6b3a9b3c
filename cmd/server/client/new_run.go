package client

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var newRunCmd = &cobra.Command{
	Use:   "new-run",
	Short: "Start a new run",
	Long:  `Creates a fresh run with starting money and level 1 upper hands, then prints its state.`,
	RunE:  runNewRun,
}

func runNewRun(cmd *cobra.Command, args []string) error {
	resp, err := call(http.MethodPost, "/v1alpha1/runs", nil)
	if err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}

	fmt.Printf("✅ Run created\n")
	printState(resp.State)
	return nil
}
