// Package goal tracks the savings target, the total-asset snapshot history,
// and the linear-trend projection of months to goal.
package goal

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jeremy-dai/hi-money-sub001/internal/ledger"
	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

// Tracker holds the singleton goal and the append-only snapshot history.
type Tracker struct {
	goal    model.Goal
	history []model.HistorySnapshot

	nowFn func() time.Time
}

// NewTracker builds a tracker from persisted state. Nil history starts empty.
func NewTracker(g model.Goal, history []model.HistorySnapshot) *Tracker {
	return &Tracker{
		goal:    g,
		history: append([]model.HistorySnapshot(nil), history...),
		nowFn:   time.Now,
	}
}

// SetClock overrides the timestamp source. Intended for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.nowFn = now
}

// SetGoal overwrites the singleton goal and timestamps it. An empty name or a
// non-positive amount aborts without any state change.
func (t *Tracker) SetGoal(name string, amount decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" || !amount.IsPositive() {
		return model.ErrInvalidGoal
	}
	t.goal = model.Goal{
		Name:        name,
		TotalAmount: amount,
		CreatedAt:   t.nowFn(),
	}
	return nil
}

// Goal returns the current goal; zero value when none has been saved.
func (t *Tracker) Goal() model.Goal {
	return t.goal
}

// Append records a total-asset snapshot. Snapshots are append-only; duplicate
// dates are allowed and all entries stay in the sequence for trend fitting.
func (t *Tracker) Append(total decimal.Decimal, date time.Time) error {
	if total.IsNegative() {
		return model.ErrInvalidAmount
	}
	t.history = append(t.history, model.HistorySnapshot{Date: date, TotalAmount: total})
	return nil
}

// HandleLedgerEvent seeds the initial snapshot from a first-funding event.
// This is the only place ledger activity feeds the history; later snapshots
// come from explicit recording.
func (t *Tracker) HandleLedgerEvent(ev ledger.Event) {
	if ev.Kind != ledger.EventFirstFunding || len(t.history) > 0 {
		return
	}
	t.history = append(t.history, model.HistorySnapshot{Date: ev.At, TotalAmount: ev.Total})
}

// History returns a copy of the snapshot sequence in insertion order.
func (t *Tracker) History() []model.HistorySnapshot {
	return append([]model.HistorySnapshot(nil), t.history...)
}

// Latest returns the most recent snapshot, if any.
func (t *Tracker) Latest() (model.HistorySnapshot, bool) {
	if len(t.history) == 0 {
		return model.HistorySnapshot{}, false
	}
	return t.history[len(t.history)-1], true
}
