package model

import "math"

// Allocation holds the percentage weight of each bucket. A valid allocation has
// every weight in [0,100] and the four weights summing to exactly 100.
type Allocation struct {
	Growth     float64 `json:"growth" toml:"growth"`
	Stability  float64 `json:"stability" toml:"stability"`
	Essentials float64 `json:"essentials" toml:"essentials"`
	Rewards    float64 `json:"rewards" toml:"rewards"`
}

// DefaultAllocation returns the canonical 25/15/50/10 split.
func DefaultAllocation() Allocation {
	return Allocation{
		Growth:     25,
		Stability:  15,
		Essentials: 50,
		Rewards:    10,
	}
}

// Weight returns the weight assigned to a bucket.
func (a Allocation) Weight(b Bucket) float64 {
	switch b {
	case BucketGrowth:
		return a.Growth
	case BucketStability:
		return a.Stability
	case BucketEssentials:
		return a.Essentials
	case BucketRewards:
		return a.Rewards
	}
	return 0
}

// SetWeight assigns a weight to a bucket. Unknown buckets are ignored.
func (a *Allocation) SetWeight(b Bucket, v float64) {
	switch b {
	case BucketGrowth:
		a.Growth = v
	case BucketStability:
		a.Stability = v
	case BucketEssentials:
		a.Essentials = v
	case BucketRewards:
		a.Rewards = v
	}
}

// Sum returns the total of all four weights.
func (a Allocation) Sum() float64 {
	return a.Growth + a.Stability + a.Essentials + a.Rewards
}

// sumTolerance absorbs float noise from weights that arrive as parsed config
// values rather than whole-number rebalance output.
const sumTolerance = 1e-9

// Validate reports whether the allocation satisfies the sum-to-100 invariant.
func (a Allocation) Validate() error {
	for _, b := range Buckets {
		w := a.Weight(b)
		if w < 0 || w > 100 {
			return ErrInvalidAllocation
		}
	}
	if math.Abs(a.Sum()-100) > sumTolerance {
		return ErrInvalidAllocation
	}
	return nil
}
