package goal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

// daysPerMonth approximates month length for the trend fit. The projection is
// deliberately not calendar-accurate.
const daysPerMonth = 30

// Project estimates the months needed to reach goalAmount from currentTotal,
// fitting a line through the first and last history snapshots only.
// Intermediate snapshots feed the trend chart, never the projection math.
//
// prev is returned unchanged when the trend is indeterminate (first and last
// snapshot on the same day), making a refresh with stale inputs a no-op
// instead of a division by zero. Project performs no mutation; repeated calls
// with the same inputs yield the same result.
func Project(goalAmount, currentTotal decimal.Decimal, history []model.HistorySnapshot, prev model.Prediction, now time.Time) model.Prediction {
	if currentTotal.GreaterThanOrEqual(goalAmount) {
		return model.Prediction{
			MonthsNeeded:      0,
			EstimatedDate:     model.DateGoalReached,
			MonthlyGrowthRate: decimal.Zero,
		}
	}

	if len(history) < 2 {
		return model.Prediction{
			MonthsNeeded:      0,
			EstimatedDate:     model.DateNotEnoughHistory,
			MonthlyGrowthRate: decimal.Zero,
		}
	}

	first := history[0]
	last := history[len(history)-1]

	days := last.Date.Sub(first.Date).Hours() / 24
	monthsDiff := days / daysPerMonth
	if monthsDiff <= 0 {
		return prev
	}

	monthlyGrowth := last.TotalAmount.Sub(first.TotalAmount).
		Div(decimal.NewFromFloat(monthsDiff))

	if !monthlyGrowth.IsPositive() {
		return model.Prediction{
			MonthsNeeded:      model.MonthsUnreachable,
			EstimatedDate:     model.DateNeedsMoreSavings,
			MonthlyGrowthRate: decimal.Zero,
		}
	}

	monthsNeeded := int(goalAmount.Sub(currentTotal).Div(monthlyGrowth).Ceil().IntPart())

	return model.Prediction{
		MonthsNeeded:      monthsNeeded,
		EstimatedDate:     now.AddDate(0, monthsNeeded, 0).Format("2006-01"),
		MonthlyGrowthRate: monthlyGrowth.Round(2),
	}
}
