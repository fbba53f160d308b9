package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeremy-dai/hi-money-sub001/internal/config"
	"github.com/jeremy-dai/hi-money-sub001/internal/state"
	"github.com/jeremy-dai/hi-money-sub001/internal/store"
)

var (
	flagDataDir string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "himoney",
	Short: "Personal budgeting assistant",
	Long:  "Split your monthly income into four buckets, track account balances, and project when you reach your savings goal.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose debug logging")
}

// newLogger builds the zap logger for this invocation.
func newLogger() *zap.Logger {
	if !flagDebug {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// openApp is the shared load path used by all commands: config, store,
// application state.
func openApp() (config.Config, *state.App, *store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}

	log := newLogger()

	st, err := store.Open(config.DBPath(cfg), log)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("opening store: %w", err)
	}

	app, err := state.Load(st, cfg.Allocation, log)
	if err != nil {
		_ = st.Close()
		return cfg, nil, nil, fmt.Errorf("loading state: %w", err)
	}

	return cfg, app, st, nil
}
