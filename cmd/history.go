package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeremy-dai/hi-money-sub001/internal/cli"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List total-asset snapshots",
	RunE:  runHistoryList,
}

var historyRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Append a snapshot of the current grand total",
	RunE:  runHistoryRecord,
}

func init() {
	historyCmd.AddCommand(historyRecordCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	history := app.Tracker.History()

	fmt.Println()
	if len(history) == 0 {
		fmt.Println("  No snapshots yet. Record one with `himoney history record`.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(history))
	values := make([]float64, 0, len(history))
	for _, snap := range history {
		rows = append(rows, []string{
			snap.Date.Format("2006-01-02"),
			cli.FormatMoney(snap.TotalAmount, cfg.General.Currency),
		})
		v, _ := snap.TotalAmount.Float64()
		values = append(values, v)
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "History",
		Headers: []string{"Date", "Total"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Trend: %s\n\n", cli.RenderSparkline(values))
	return nil
}

func runHistoryRecord(_ *cobra.Command, _ []string) error {
	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	total := app.Ledger.GrandTotal()
	if err := app.Tracker.Append(total, time.Now()); err != nil {
		return err
	}
	if err := app.SaveHistory(); err != nil {
		return err
	}

	fmt.Printf("  Recorded snapshot: %s\n", cli.FormatMoney(total, cfg.General.Currency))
	return nil
}
