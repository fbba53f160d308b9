package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show the savings goal and projection",
	RunE:  runGoalShow,
}

var goalSetCmd = &cobra.Command{
	Use:   "set <name> <amount>",
	Short: "Set or overwrite the savings goal",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalSet,
}

func init() {
	goalCmd.AddCommand(goalSetCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalShow(_ *cobra.Command, _ []string) error {
	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println()
	printGoal(cfg, app)
	return nil
}

func runGoalSet(_ *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], model.ErrInvalidGoal)
	}

	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := app.Tracker.SetGoal(args[0], amount); err != nil {
		return err
	}
	if err := app.SaveGoal(); err != nil {
		return err
	}

	fmt.Println()
	printGoal(cfg, app)
	return nil
}
