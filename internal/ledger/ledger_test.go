package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

func newTestLedger() *Ledger {
	l := New(nil)
	l.SetClock(func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	})
	return l
}

func TestAddAccountRejectsBlankName(t *testing.T) {
	l := newTestLedger()

	_, err := l.AddAccount(model.BucketGrowth, "   ")
	require.ErrorIs(t, err, model.ErrInvalidName)
	require.Zero(t, l.TotalAccounts())
}

func TestAddAccountRejectsUnknownBucket(t *testing.T) {
	l := newTestLedger()

	_, err := l.AddAccount(model.Bucket("vacation"), "Savings")
	require.ErrorIs(t, err, model.ErrUnknownBucket)
}

func TestFirstFundingEventFiresOnce(t *testing.T) {
	l := newTestLedger()

	ev, err := l.AddAccount(model.BucketGrowth, "Index fund")
	require.NoError(t, err)
	require.Equal(t, EventFirstFunding, ev.Kind)
	require.True(t, ev.Total.IsZero())
	require.Equal(t, 2024, ev.At.Year())

	ev, err = l.AddAccount(model.BucketRewards, "Fun money")
	require.NoError(t, err)
	require.Equal(t, EventNone, ev.Kind)
}

func TestCategoryTotalsTreatInvalidInputAsZero(t *testing.T) {
	l := newTestLedger()

	for _, name := range []string{"Brokerage", "Index fund", "Crypto"} {
		_, err := l.AddAccount(model.BucketGrowth, name)
		require.NoError(t, err)
	}

	require.NoError(t, l.UpdateAmount(model.BucketGrowth, 0, model.ParseAmount("10")))
	require.NoError(t, l.UpdateAmount(model.BucketGrowth, 1, model.ParseAmount("20")))
	require.NoError(t, l.UpdateAmount(model.BucketGrowth, 2, model.ParseAmount("abc")))

	require.True(t, l.CategoryTotal(model.BucketGrowth).Equal(decimal.NewFromInt(30)),
		"got %s", l.CategoryTotal(model.BucketGrowth))
	require.True(t, l.GrandTotal().Equal(decimal.NewFromInt(30)))
}

func TestUpdateAmountCoercesNegativeToZero(t *testing.T) {
	l := newTestLedger()
	_, err := l.AddAccount(model.BucketStability, "Bonds")
	require.NoError(t, err)

	require.NoError(t, l.UpdateAmount(model.BucketStability, 0, decimal.NewFromInt(-50)))
	require.True(t, l.Accounts(model.BucketStability)[0].Amount.IsZero())
}

func TestUpdateAmountOutOfRange(t *testing.T) {
	l := newTestLedger()
	_, err := l.AddAccount(model.BucketGrowth, "Brokerage")
	require.NoError(t, err)

	err = l.UpdateAmount(model.BucketGrowth, 3, decimal.NewFromInt(10))
	require.ErrorIs(t, err, model.ErrIndexOutOfRange)

	err = l.UpdateAmount(model.BucketGrowth, -1, decimal.NewFromInt(10))
	require.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestDeleteAccountPreservesOrderAndTotals(t *testing.T) {
	l := newTestLedger()
	for i, name := range []string{"A", "B", "C"} {
		_, err := l.AddAccount(model.BucketEssentials, name)
		require.NoError(t, err)
		require.NoError(t, l.UpdateAmount(model.BucketEssentials, i, decimal.NewFromInt(int64(i+1)*100)))
	}

	require.NoError(t, l.DeleteAccount(model.BucketEssentials, 1))

	accs := l.Accounts(model.BucketEssentials)
	require.Len(t, accs, 2)
	require.Equal(t, "A", accs[0].Name)
	require.Equal(t, "C", accs[1].Name)
	require.True(t, l.CategoryTotal(model.BucketEssentials).Equal(decimal.NewFromInt(400)))

	err := l.DeleteAccount(model.BucketEssentials, 5)
	require.ErrorIs(t, err, model.ErrIndexOutOfRange)
}

func TestLedgerRoundTripsPersistedAccounts(t *testing.T) {
	l := newTestLedger()
	_, err := l.AddAccount(model.BucketGrowth, "Brokerage")
	require.NoError(t, err)
	require.NoError(t, l.UpdateAmount(model.BucketGrowth, 0, decimal.NewFromInt(250)))

	restored := New(l.All())

	require.Equal(t, l.All(), restored.All())
	require.True(t, restored.GrandTotal().Equal(decimal.NewFromInt(250)))
}
