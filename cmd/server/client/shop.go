package client

import (
	"fmt"

	"github.com/spf13/cobra"

	v1alpha1 "github.com/rollrogue/rollrogue-api/internal/handlers/api/v1alpha1"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend rewards between levels",
}

var shopCashOutCmd = &cobra.Command{
	Use:   "cash-out <run-id>",
	Short: "Bank a won level and open the shop",
	Long:  `Cashes out of a won level, collects the rewards, and enters the shop.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShopCashOut,
}

var shopUpgradeCmd = &cobra.Command{
	Use:   "upgrade <run-id>",
	Short: "Browse the hand upgrade options",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopUpgrade,
}

var shopPickCmd = &cobra.Command{
	Use:   "pick <run-id> <hand>",
	Short: "Buy a hand upgrade",
	Args:  cobra.ExactArgs(2),
	RunE:  runShopPick,
}

var shopCancelCmd = &cobra.Command{
	Use:   "cancel <run-id>",
	Short: "Back out of the upgrade pick",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopCancel,
}

var shopNextCmd = &cobra.Command{
	Use:   "next <run-id>",
	Short: "Leave the shop and start the next level",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopNext,
}

func init() {
	shopCmd.AddCommand(shopCashOutCmd)
	shopCmd.AddCommand(shopUpgradeCmd)
	shopCmd.AddCommand(shopPickCmd)
	shopCmd.AddCommand(shopCancelCmd)
	shopCmd.AddCommand(shopNextCmd)
}

func runShopCashOut(cmd *cobra.Command, args []string) error {
	runID := args[0]

	resp, err := postAction(runID, "cash-out", nil)
	if err != nil {
		return fmt.Errorf("failed to cash out: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Level is not won yet\n")
		printState(resp.State)
		return nil
	}

	resp, err = postAction(runID, "shop/open", nil)
	if err != nil {
		return fmt.Errorf("failed to open shop: %w", err)
	}

	fmt.Printf("💰 Cashed out\n")
	printState(resp.State)
	return nil
}

func runShopUpgrade(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "shop/upgrade-item", nil)
	if err != nil {
		return fmt.Errorf("failed to open upgrade pick: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Upgrades are not available right now\n")
	}
	printState(resp.State)
	return nil
}

func runShopPick(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "shop/pick-upgrade", &v1alpha1.PickUpgradeRequest{Hand: args[1]})
	if err != nil {
		return fmt.Errorf("failed to buy upgrade: %w", err)
	}
	if !resp.Applied {
		fmt.Printf("⚠️  Cannot buy %s (not offered or not affordable)\n", args[1])
	} else {
		fmt.Printf("⬆️  Upgraded %s\n", args[1])
	}
	printState(resp.State)
	return nil
}

func runShopCancel(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "shop/cancel-pick", nil)
	if err != nil {
		return fmt.Errorf("failed to cancel pick: %w", err)
	}
	printState(resp.State)
	return nil
}

func runShopNext(cmd *cobra.Command, args []string) error {
	resp, err := postAction(args[0], "shop/next-level", nil)
	if err != nil {
		return fmt.Errorf("failed to leave shop: %w", err)
	}
	if resp.State.Phase == "win_screen" {
		fmt.Printf("🏆 Run complete!\n")
	}
	printState(resp.State)
	return nil
}
