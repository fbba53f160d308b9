// Package state assembles the application aggregates from the key-value store
// and persists them back, one key per aggregate. There is deliberately no
// global singleton: commands load an App, mutate it through its components,
// and save the aggregates they touched.
package state

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/jeremy-dai/hi-money-sub001/internal/budget"
	"github.com/jeremy-dai/hi-money-sub001/internal/goal"
	"github.com/jeremy-dai/hi-money-sub001/internal/ledger"
	"github.com/jeremy-dai/hi-money-sub001/internal/model"
	"github.com/jeremy-dai/hi-money-sub001/internal/store"
)

// App is the explicit application-state object. Each aggregate saves
// independently; a crash between saves can leave the keys inconsistent, which
// is acceptable for a single-user, best-effort tool.
type App struct {
	MonthlyIncome decimal.Decimal
	SetupDone     bool
	Allocation    *budget.AllocationModel
	Ledger        *ledger.Ledger
	Tracker       *goal.Tracker

	store *store.Store
	log   *zap.Logger
}

// Load builds the App from the store, falling back to defaults for any absent
// key. A stored allocation that no longer validates is replaced by defaults
// rather than wedging startup.
func Load(st *store.Store, defaults model.Allocation, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	app := &App{store: st, log: log}

	if err := loadKey(st, store.KeyMonthlyIncome, &app.MonthlyIncome); err != nil {
		return nil, err
	}
	if err := loadKey(st, store.KeyHasCompletedSetup, &app.SetupDone); err != nil {
		return nil, err
	}

	alloc := defaults
	found, err := loadKeyFound(st, store.KeyAllocation, &alloc)
	if err != nil {
		return nil, err
	}
	app.Allocation, err = budget.NewAllocationModel(alloc)
	if err != nil {
		if found {
			log.Warn("stored allocation invalid, using defaults", zap.Error(err))
		}
		app.Allocation, err = budget.NewAllocationModel(defaults)
		if err != nil {
			return nil, errors.Wrap(err, "default allocation")
		}
	}

	var accounts map[model.Bucket][]model.Account
	if err := loadKey(st, store.KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	app.Ledger = ledger.New(accounts)

	var g model.Goal
	if err := loadKey(st, store.KeyGoal, &g); err != nil {
		return nil, err
	}
	var history []model.HistorySnapshot
	if err := loadKey(st, store.KeyHistory, &history); err != nil {
		return nil, err
	}
	app.Tracker = goal.NewTracker(g, history)

	return app, nil
}

// SaveIncome persists the monthly income.
func (a *App) SaveIncome() error {
	return a.saveKey(store.KeyMonthlyIncome, a.MonthlyIncome)
}

// SaveSetupDone persists the setup-completed flag.
func (a *App) SaveSetupDone() error {
	return a.saveKey(store.KeyHasCompletedSetup, a.SetupDone)
}

// SaveAllocation persists the committed allocation weights.
func (a *App) SaveAllocation() error {
	return a.saveKey(store.KeyAllocation, a.Allocation.Weights())
}

// SaveAccounts persists every bucket's account list.
func (a *App) SaveAccounts() error {
	return a.saveKey(store.KeyAccounts, a.Ledger.All())
}

// SaveGoal persists the singleton goal.
func (a *App) SaveGoal() error {
	return a.saveKey(store.KeyGoal, a.Tracker.Goal())
}

// SaveHistory persists the snapshot history.
func (a *App) SaveHistory() error {
	return a.saveKey(store.KeyHistory, a.Tracker.History())
}

func (a *App) saveKey(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}
	return a.store.Put(key, data)
}

func loadKey(st *store.Store, key string, dst any) error {
	_, err := loadKeyFound(st, key, dst)
	return err
}

func loadKeyFound(st *store.Store, key string, dst any) (bool, error) {
	data, ok, err := st.Get(key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return true, errors.Wrapf(err, "decoding %s", key)
	}
	return true, nil
}
