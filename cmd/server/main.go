// Package main is the entry point for the rollrogue API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rollrogue/rollrogue-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rollrogue-api",
	Short: "Rollrogue API server",
	Long:  `Rollrogue API serves the rules engine of a roguelike dice game: runs, levels, hands, scoring, and the upgrade shop.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
