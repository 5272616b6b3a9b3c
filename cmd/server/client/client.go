// Package client provides test commands for the rollrogue API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the rollrogue API",
	Long:  `Client commands allow you to play the game from a terminal by making real HTTP requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "API server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(newRunCmd)
	ClientCmd.AddCommand(getStateCmd)
	ClientCmd.AddCommand(startLevelCmd)
	ClientCmd.AddCommand(rollCmd)
	ClientCmd.AddCommand(lockCmd)
	ClientCmd.AddCommand(handCmd)
	ClientCmd.AddCommand(shopCmd)
	ClientCmd.AddCommand(editorCmd)
}

// call makes one API request and decodes the shared action envelope
func call(method, path string, body any) (*v1alpha1.ActionResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverAddr+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}

	var out v1alpha1.ActionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}

func postAction(runID, action string, body any) (*v1alpha1.ActionResponse, error) {
	return call(http.MethodPost, fmt.Sprintf("/v1alpha1/runs/%s/%s", runID, action), body)
}

// printState renders a snapshot for the terminal
func printState(state *v1alpha1.StateView) {
	fmt.Printf("\n🎲 Run %s\n", state.RunID)
	fmt.Printf("==================\n")
	fmt.Printf("Phase: %s   Level: %d   Money: $%d\n", state.Phase, state.LevelIndex, state.Money)
	fmt.Printf("Score: %d / %d   Hands left: %d   Rolls left: %d\n",
		state.Score, state.Goal, state.HandsRemaining, state.RollsRemaining)

	fmt.Printf("Dice: ")
	for i, die := range state.Dice {
		lock := " "
		if die.Locked {
			lock = "*"
		}
		fmt.Printf("[%d%s]", die.Value, lock)
		if i < len(state.Dice)-1 {
			fmt.Printf(" ")
		}
	}
	fmt.Println()

	if state.SelectedHand != "" {
		fmt.Printf("Selected: %s\n", state.SelectedHand)
	}
	if len(state.ValidHands) > 0 {
		fmt.Printf("Valid hands: %s\n", strings.Join(state.ValidHands, ", "))
	}
	if state.Reveal != nil {
		fmt.Printf("Revealing %s: %d (step %d/%d)\n",
			state.Reveal.Hand, state.Reveal.FinalScore,
			state.Reveal.Step, len(state.Reveal.Contributions))
	}
	if state.LevelWon {
		fmt.Printf("🏆 Level won! Cash out when ready.\n")
	}
	if state.Shop != nil {
		fmt.Printf("Shop rewards: +$%d", state.Shop.Rewards.Total)
		if state.Shop.DiceOffer != "" {
			fmt.Printf("   Dice offer: %s", state.Shop.DiceOffer)
		}
		if len(state.Shop.Options) > 0 {
			fmt.Printf("   Upgrade options: %s", strings.Join(state.Shop.Options, ", "))
		}
		fmt.Println()
	}
}
