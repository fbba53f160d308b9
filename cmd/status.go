package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jeremy-dai/hi-money-sub001/internal/cli"
	"github.com/jeremy-dai/hi-money-sub001/internal/config"
	"github.com/jeremy-dai/hi-money-sub001/internal/goal"
	"github.com/jeremy-dai/hi-money-sub001/internal/model"
	"github.com/jeremy-dai/hi-money-sub001/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Dashboard: allocation, balances, and goal projection",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	if !app.SetupDone {
		fmt.Println()
		fmt.Println("  Welcome to himoney! Run `himoney setup` to get started.")
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("HI-MONEY"))
	fmt.Println()
	fmt.Printf("  Monthly income: %s\n\n", cli.FormatMoney(app.MonthlyIncome, cfg.General.Currency))

	printAllocation(cfg, app)
	printBalances(cfg, app)
	printGoal(cfg, app)

	return nil
}

func printAllocation(cfg config.Config, app *state.App) {
	weights := app.Allocation.Weights()

	rows := make([][]string, 0, len(model.Buckets))
	for i, b := range model.Buckets {
		w := weights.Weight(b)
		monthly := app.MonthlyIncome.Mul(decimal.NewFromFloat(w)).Div(decimal.NewFromInt(100))
		rows = append(rows, []string{
			b.Label(),
			cli.FormatWeight(w),
			cli.RenderWeightBar(w, 20, cli.BucketColors[i]),
			cli.FormatMoney(monthly, cfg.General.Currency),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Allocation",
		Headers: []string{"Bucket", "Weight", "", "Monthly"},
		Rows:    rows,
	}))
	fmt.Println()
}

func printBalances(cfg config.Config, app *state.App) {
	if app.Ledger.TotalAccounts() == 0 {
		fmt.Println("  No accounts yet. Add one with `himoney accounts add <bucket> <name>`.")
		fmt.Println()
		return
	}

	rows := make([][]string, 0, len(model.Buckets)+2)
	for _, b := range model.Buckets {
		n := len(app.Ledger.Accounts(b))
		rows = append(rows, []string{
			b.Label(),
			cli.FormatNumber(int64(n)),
			cli.FormatMoney(app.Ledger.CategoryTotal(b), cfg.General.Currency),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", "", cli.FormatMoney(app.Ledger.GrandTotal(), cfg.General.Currency)})

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Balances",
		Headers: []string{"Bucket", "Accounts", "Total"},
		Rows:    rows,
	}))
	fmt.Println()
}

func printGoal(cfg config.Config, app *state.App) {
	g := app.Tracker.Goal()
	if !g.IsSet() {
		fmt.Println("  No savings goal set. Use `himoney goal set <name> <amount>`.")
		fmt.Println()
		return
	}

	total := app.Ledger.GrandTotal()
	pct, _ := total.Div(g.TotalAmount).Float64()

	fmt.Printf("  Goal: %s (%s)\n", g.Name, cli.FormatMoney(g.TotalAmount, cfg.General.Currency))
	fmt.Printf("  %s\n", cli.RenderProgress(pct, 30))

	pred := goal.Project(g.TotalAmount, total, app.Tracker.History(), model.Prediction{}, time.Now())
	fmt.Printf("  %s\n\n", describePrediction(pred, cfg.General.Currency))
}

// describePrediction turns a prediction into one display line, mapping the
// sentinel labels to friendly text.
func describePrediction(p model.Prediction, currency string) string {
	switch p.EstimatedDate {
	case model.DateGoalReached:
		return "Goal already reached — congratulations!"
	case model.DateNotEnoughHistory, "":
		return "Record more snapshots to see a projection."
	case model.DateNeedsMoreSavings:
		return "Balance is not growing — needs increased savings."
	}
	return fmt.Sprintf("On track for %s (%s, growing %s/month)",
		p.EstimatedDate,
		cli.FormatMonths(p.MonthsNeeded),
		cli.FormatMoney(p.MonthlyGrowthRate, currency),
	)
}
