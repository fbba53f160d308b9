package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jeremy-dai/hi-money-sub001/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	var (
		incomeStr     string
		goalName      string
		goalAmountStr string
	)
	if app.MonthlyIncome.IsPositive() {
		incomeStr = app.MonthlyIncome.String()
	}
	if g := app.Tracker.Goal(); g.IsSet() {
		goalName = g.Name
		goalAmountStr = g.TotalAmount.String()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income").
				Description("Your take-home income per month.").
				Placeholder("3000").
				Value(&incomeStr).
				Validate(validatePositiveAmount),
			huh.NewInput().
				Title("Savings goal name").
				Placeholder("Emergency fund").
				Value(&goalName),
			huh.NewInput().
				Title("Savings goal amount").
				Description("Leave blank to set a goal later.").
				Placeholder("10000").
				Value(&goalAmountStr).
				Validate(validateOptionalAmount),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup aborted: %w", err)
	}

	income, err := decimal.NewFromString(strings.TrimSpace(incomeStr))
	if err != nil {
		return fmt.Errorf("invalid income %q", incomeStr)
	}
	app.MonthlyIncome = income
	if err := app.SaveIncome(); err != nil {
		return err
	}

	if strings.TrimSpace(goalName) != "" && strings.TrimSpace(goalAmountStr) != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(goalAmountStr))
		if err != nil {
			return fmt.Errorf("invalid goal amount %q", goalAmountStr)
		}
		if err := app.Tracker.SetGoal(goalName, amount); err != nil {
			return err
		}
		if err := app.SaveGoal(); err != nil {
			return err
		}
	}

	if err := app.SaveAllocation(); err != nil {
		return err
	}

	app.SetupDone = true
	if err := app.SaveSetupDone(); err != nil {
		return err
	}

	if !config.Exists() {
		if err := config.Save(cfg); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
	}

	fmt.Println()
	fmt.Println("  Setup complete. Run `himoney status` to see your dashboard,")
	fmt.Println("  and `himoney accounts add <bucket> <name>` to start tracking balances.")
	fmt.Println()

	return nil
}

func validatePositiveAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !d.IsPositive() {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePositiveAmount(s)
}
