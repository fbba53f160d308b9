// Package budget implements the allocation rebalancing engine: the proportional
// redistribution that keeps the four bucket weights summing to exactly 100
// after any single weight changes.
package budget

import (
	"math"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

// Rebalance returns a new allocation in which changed carries newValue and the
// remaining percentage is spread across the other three buckets in proportion
// to their current weights. The input allocation is not mutated.
//
// When the three untouched buckets are all at zero there is nothing to
// redistribute against: they stay at zero and the changed bucket keeps
// newValue, which can leave the total below 100. Callers must treat that state
// as transient and reject it at commit time via AllocationModel.
func Rebalance(current model.Allocation, changed model.Bucket, newValue float64) model.Allocation {
	newValue = clamp(newValue, 0, 100)
	remaining := 100 - newValue

	next := current
	next.SetWeight(changed, newValue)

	others := othersOf(changed)
	var othersTotalBefore float64
	for _, b := range others {
		othersTotalBefore += current.Weight(b)
	}

	if othersTotalBefore > 0 && remaining >= 0 {
		for _, b := range others {
			share := current.Weight(b) / othersTotalBefore
			next.SetWeight(b, math.Round(remaining*share))
		}

		// Rounding can leave the total a point or two off 100. The whole
		// deficit or surplus lands on the first untouched bucket in canonical
		// order, never the changed one.
		if diff := 100 - next.Sum(); diff != 0 {
			first := others[0]
			next.SetWeight(first, next.Weight(first)+diff)
		}
	}

	for _, b := range model.Buckets {
		next.SetWeight(b, clamp(next.Weight(b), 0, 100))
	}

	return next
}

// othersOf returns the buckets other than changed, in canonical order.
func othersOf(changed model.Bucket) []model.Bucket {
	others := make([]model.Bucket, 0, len(model.Buckets)-1)
	for _, b := range model.Buckets {
		if b != changed {
			others = append(others, b)
		}
	}
	return others
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
