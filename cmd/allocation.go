package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeremy-dai/hi-money-sub001/internal/budget"
	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

var allocationCmd = &cobra.Command{
	Use:   "allocation",
	Short: "Show bucket weights",
	RunE:  runAllocationShow,
}

var allocationSetCmd = &cobra.Command{
	Use:   "set <bucket> <percent>",
	Short: "Change one bucket's weight; the others rebalance proportionally",
	Args:  cobra.ExactArgs(2),
	RunE:  runAllocationSet,
}

func init() {
	allocationCmd.AddCommand(allocationSetCmd)
	rootCmd.AddCommand(allocationCmd)
}

func runAllocationShow(_ *cobra.Command, _ []string) error {
	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println()
	printAllocation(cfg, app)
	return nil
}

func runAllocationSet(_ *cobra.Command, args []string) error {
	bucket, err := model.ParseBucket(args[0])
	if err != nil {
		return fmt.Errorf("%v (buckets: growth, stability, essentials, rewards)", err)
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid percent %q", args[1])
	}

	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	next := budget.Rebalance(app.Allocation.Weights(), bucket, value)
	if err := app.Allocation.ApplyRebalance(next); err != nil {
		if errors.Is(err, model.ErrInvalidAllocation) {
			return fmt.Errorf("total must equal 100 — raise another bucket above zero first")
		}
		return err
	}
	if err := app.SaveAllocation(); err != nil {
		return err
	}

	fmt.Println()
	printAllocation(cfg, app)
	return nil
}
