// Package ledger tracks per-bucket monetary accounts and derives category and
// grand totals on every mutation.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

// Ledger owns the per-bucket account lists. Account order within a bucket is
// insertion order and is user-visible.
type Ledger struct {
	accounts map[model.Bucket][]model.Account
	totals   map[model.Bucket]decimal.Decimal
	grand    decimal.Decimal

	nowFn func() time.Time
}

// New builds a ledger from persisted accounts. A nil map starts empty.
func New(accounts map[model.Bucket][]model.Account) *Ledger {
	l := &Ledger{
		accounts: make(map[model.Bucket][]model.Account, len(model.Buckets)),
		nowFn:    time.Now,
	}
	for _, b := range model.Buckets {
		if accs, ok := accounts[b]; ok {
			l.accounts[b] = append([]model.Account(nil), accs...)
		}
	}
	l.recomputeTotals()
	return l
}

// SetClock overrides the event timestamp source. Intended for tests.
func (l *Ledger) SetClock(now func() time.Time) {
	l.nowFn = now
}

// AddAccount appends a zero-amount account at the tail of the bucket's list.
// The returned event is EventFirstFunding when this mutation took the ledger
// out of the empty state; callers forward it to the goal tracker.
func (l *Ledger) AddAccount(bucket model.Bucket, name string) (Event, error) {
	if _, err := model.ParseBucket(string(bucket)); err != nil {
		return Event{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, model.ErrInvalidName
	}

	wasEmpty := l.TotalAccounts() == 0

	l.accounts[bucket] = append(l.accounts[bucket], model.Account{
		ID:     uuid.NewString(),
		Name:   name,
		Amount: decimal.Zero,
	})
	l.recomputeTotals()

	if wasEmpty {
		return Event{Kind: EventFirstFunding, Total: l.grand, At: l.nowFn()}, nil
	}
	return Event{}, nil
}

// UpdateAmount replaces an account's amount. Negative input coerces to zero;
// the ledger never stores a negative amount.
func (l *Ledger) UpdateAmount(bucket model.Bucket, index int, amount decimal.Decimal) error {
	accs := l.accounts[bucket]
	if index < 0 || index >= len(accs) {
		return errors.Wrapf(model.ErrIndexOutOfRange, "%s[%d]", bucket, index)
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	accs[index].Amount = amount
	l.recomputeTotals()
	return nil
}

// DeleteAccount removes the account at index, preserving the order of the
// rest. Out-of-range indices indicate a stale caller, not user error.
func (l *Ledger) DeleteAccount(bucket model.Bucket, index int) error {
	accs := l.accounts[bucket]
	if index < 0 || index >= len(accs) {
		return errors.Wrapf(model.ErrIndexOutOfRange, "%s[%d]", bucket, index)
	}
	l.accounts[bucket] = append(accs[:index:index], accs[index+1:]...)
	l.recomputeTotals()
	return nil
}

// Accounts returns a copy of the bucket's account list.
func (l *Ledger) Accounts(bucket model.Bucket) []model.Account {
	return append([]model.Account(nil), l.accounts[bucket]...)
}

// All returns a copy of every bucket's account list, for persistence.
func (l *Ledger) All() map[model.Bucket][]model.Account {
	out := make(map[model.Bucket][]model.Account, len(l.accounts))
	for b, accs := range l.accounts {
		out[b] = append([]model.Account(nil), accs...)
	}
	return out
}

// CategoryTotal returns the sum of the bucket's account amounts.
func (l *Ledger) CategoryTotal(bucket model.Bucket) decimal.Decimal {
	return l.totals[bucket]
}

// GrandTotal returns the sum over all buckets.
func (l *Ledger) GrandTotal() decimal.Decimal {
	return l.grand
}

// TotalAccounts returns the number of accounts across all buckets.
func (l *Ledger) TotalAccounts() int {
	n := 0
	for _, accs := range l.accounts {
		n += len(accs)
	}
	return n
}

// recomputeTotals rebuilds the derived aggregates. O(total accounts), never
// fails: the ledger only ever stores valid non-negative amounts.
func (l *Ledger) recomputeTotals() {
	l.totals = make(map[model.Bucket]decimal.Decimal, len(model.Buckets))
	l.grand = decimal.Zero
	for _, b := range model.Buckets {
		sum := decimal.Zero
		for _, acc := range l.accounts[b] {
			sum = sum.Add(acc.Amount)
		}
		l.totals[b] = sum
		l.grand = l.grand.Add(sum)
	}
}
