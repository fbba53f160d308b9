package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeremy-dai/hi-money-sub001/internal/cli"
	"github.com/jeremy-dai/hi-money-sub001/internal/ledger"
	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts by bucket",
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add <bucket> <name>",
	Short: "Add an account with a zero balance",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAccountsAdd,
}

var accountsUpdateCmd = &cobra.Command{
	Use:   "update <bucket> <index> <amount>",
	Short: "Set an account's balance",
	Args:  cobra.ExactArgs(3),
	RunE:  runAccountsUpdate,
}

var accountsDeleteCmd = &cobra.Command{
	Use:   "delete <bucket> <index>",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(2),
	RunE:  runAccountsDelete,
}

func init() {
	accountsCmd.AddCommand(accountsAddCmd)
	accountsCmd.AddCommand(accountsUpdateCmd)
	accountsCmd.AddCommand(accountsDeleteCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList(_ *cobra.Command, _ []string) error {
	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println()
	if app.Ledger.TotalAccounts() == 0 {
		fmt.Println("  No accounts yet. Add one with `himoney accounts add <bucket> <name>`.")
		fmt.Println()
		return nil
	}

	for _, b := range model.Buckets {
		accs := app.Ledger.Accounts(b)
		if len(accs) == 0 {
			continue
		}
		rows := make([][]string, 0, len(accs)+2)
		for i, acc := range accs {
			rows = append(rows, []string{
				strconv.Itoa(i),
				acc.Name,
				cli.FormatMoney(acc.Amount, cfg.General.Currency),
			})
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"", "Total", cli.FormatMoney(app.Ledger.CategoryTotal(b), cfg.General.Currency)})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   b.Label(),
			Headers: []string{"#", "Name", "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	fmt.Printf("  Grand total: %s\n\n", cli.FormatMoney(app.Ledger.GrandTotal(), cfg.General.Currency))
	return nil
}

func runAccountsAdd(_ *cobra.Command, args []string) error {
	bucket, err := model.ParseBucket(args[0])
	if err != nil {
		return err
	}
	name := strings.Join(args[1:], " ")

	_, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	ev, err := app.Ledger.AddAccount(bucket, name)
	if err != nil {
		return err
	}
	app.Tracker.HandleLedgerEvent(ev)

	if err := app.SaveAccounts(); err != nil {
		return err
	}
	if ev.Kind == ledger.EventFirstFunding {
		if err := app.SaveHistory(); err != nil {
			return err
		}
	}

	fmt.Printf("  Added %q to %s.\n", strings.TrimSpace(name), bucket.Label())
	return nil
}

func runAccountsUpdate(_ *cobra.Command, args []string) error {
	bucket, err := model.ParseBucket(args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[1])
	}

	// Malformed or negative amounts coerce to zero by policy.
	amount := model.ParseAmount(args[2])

	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := app.Ledger.UpdateAmount(bucket, index, amount); err != nil {
		return err
	}
	if err := app.SaveAccounts(); err != nil {
		return err
	}

	fmt.Printf("  %s[%d] = %s (bucket total %s)\n",
		bucket.Label(), index,
		cli.FormatMoney(amount, cfg.General.Currency),
		cli.FormatMoney(app.Ledger.CategoryTotal(bucket), cfg.General.Currency),
	)
	return nil
}

func runAccountsDelete(_ *cobra.Command, args []string) error {
	bucket, err := model.ParseBucket(args[0])
	if err != nil {
		return err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[1])
	}

	cfg, app, st, err := openApp()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := app.Ledger.DeleteAccount(bucket, index); err != nil {
		return err
	}
	if err := app.SaveAccounts(); err != nil {
		return err
	}

	fmt.Printf("  Deleted %s[%d] (bucket total %s)\n",
		bucket.Label(), index,
		cli.FormatMoney(app.Ledger.CategoryTotal(bucket), cfg.General.Currency),
	)
	return nil
}
