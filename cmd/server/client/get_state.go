package client

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var getStateCmd = &cobra.Command{
	Use:   "state <run-id>",
	Short: "Show the current state of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetState,
}

func runGetState(cmd *cobra.Command, args []string) error {
	resp, err := call(http.MethodGet, "/v1alpha1/runs/"+args[0], nil)
	if err != nil {
		return fmt.Errorf("failed to get state: %w", err)
	}

	printState(resp.State)
	return nil
}
