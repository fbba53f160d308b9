package goal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jeremy-dai/hi-money-sub001/internal/ledger"
	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

func newTestTracker() *Tracker {
	tr := NewTracker(model.Goal{}, nil)
	tr.SetClock(func() time.Time {
		return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	})
	return tr
}

func TestSetGoalValidation(t *testing.T) {
	tr := newTestTracker()

	require.ErrorIs(t, tr.SetGoal("  ", decimal.NewFromInt(1000)), model.ErrInvalidGoal)
	require.ErrorIs(t, tr.SetGoal("House", decimal.Zero), model.ErrInvalidGoal)
	require.ErrorIs(t, tr.SetGoal("House", decimal.NewFromInt(-5)), model.ErrInvalidGoal)
	require.False(t, tr.Goal().IsSet(), "failed SetGoal must not mutate state")

	require.NoError(t, tr.SetGoal("House", decimal.NewFromInt(100000)))
	g := tr.Goal()
	require.Equal(t, "House", g.Name)
	require.True(t, g.TotalAmount.Equal(decimal.NewFromInt(100000)))
	require.Equal(t, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), g.CreatedAt)
}

func TestSetGoalOverwritesSingleton(t *testing.T) {
	tr := newTestTracker()
	require.NoError(t, tr.SetGoal("House", decimal.NewFromInt(100000)))
	require.NoError(t, tr.SetGoal("Boat", decimal.NewFromInt(40000)))

	require.Equal(t, "Boat", tr.Goal().Name)
}

func TestAppendSnapshot(t *testing.T) {
	tr := newTestTracker()
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	require.ErrorIs(t, tr.Append(decimal.NewFromInt(-1), day), model.ErrInvalidAmount)
	require.Empty(t, tr.History())

	require.NoError(t, tr.Append(decimal.NewFromInt(1000), day))
	// Duplicate dates stay in the sequence for trend fitting.
	require.NoError(t, tr.Append(decimal.NewFromInt(1500), day))

	history := tr.History()
	require.Len(t, history, 2)
	require.True(t, history[1].TotalAmount.Equal(decimal.NewFromInt(1500)))

	latest, ok := tr.Latest()
	require.True(t, ok)
	require.True(t, latest.TotalAmount.Equal(decimal.NewFromInt(1500)))
}

func TestFirstFundingEventSeedsHistoryOnce(t *testing.T) {
	tr := newTestTracker()
	at := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tr.HandleLedgerEvent(ledger.Event{Kind: ledger.EventNone})
	require.Empty(t, tr.History())

	tr.HandleLedgerEvent(ledger.Event{Kind: ledger.EventFirstFunding, Total: decimal.Zero, At: at})
	require.Len(t, tr.History(), 1)
	require.Equal(t, at, tr.History()[0].Date)

	// History is already seeded; further events are ignored.
	tr.HandleLedgerEvent(ledger.Event{Kind: ledger.EventFirstFunding, Total: decimal.NewFromInt(500), At: at})
	require.Len(t, tr.History(), 1)
}

func TestHistoryReturnsCopy(t *testing.T) {
	tr := newTestTracker()
	require.NoError(t, tr.Append(decimal.NewFromInt(100), time.Now()))

	history := tr.History()
	history[0].TotalAmount = decimal.NewFromInt(999999)

	require.True(t, tr.History()[0].TotalAmount.Equal(decimal.NewFromInt(100)))
}
