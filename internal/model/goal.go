package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is the singleton savings target.
type Goal struct {
	Name        string          `json:"name"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// IsSet reports whether a goal has been saved.
func (g Goal) IsSet() bool {
	return g.Name != "" && g.TotalAmount.IsPositive()
}

// HistorySnapshot is one timestamped total-asset reading. Snapshots are
// append-only; duplicate dates are permitted.
type HistorySnapshot struct {
	Date        time.Time       `json:"date"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Prediction sentinel values.
const (
	// MonthsUnreachable marks a projection with non-positive growth.
	MonthsUnreachable = 999

	DateGoalReached      = "goal already reached"
	DateNotEnoughHistory = "not enough history"
	DateNeedsMoreSavings = "needs increased savings"
)

// Prediction is the derived estimate of time-to-goal. It is recomputed from the
// goal, current total and snapshot history; never persisted as source of truth.
type Prediction struct {
	MonthsNeeded      int             `json:"monthsNeeded"`
	EstimatedDate     string          `json:"estimatedDate"`
	MonthlyGrowthRate decimal.Decimal `json:"monthlyGrowthRate"`
}
