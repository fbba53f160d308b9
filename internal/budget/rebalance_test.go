package budget

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

func TestRebalanceKeepsSumAt100(t *testing.T) {
	cases := []struct {
		name    string
		current model.Allocation
		changed model.Bucket
		value   float64
	}{
		{"raise growth", model.DefaultAllocation(), model.BucketGrowth, 40},
		{"drop essentials", model.DefaultAllocation(), model.BucketEssentials, 10},
		{"zero rewards", model.DefaultAllocation(), model.BucketRewards, 0},
		{"max essentials", model.DefaultAllocation(), model.BucketEssentials, 100},
		{"fractional input", model.DefaultAllocation(), model.BucketStability, 33.3},
		{"uneven thirds", model.Allocation{Growth: 40, Stability: 20, Essentials: 20, Rewards: 20}, model.BucketGrowth, 50},
		{"lopsided", model.Allocation{Growth: 1, Stability: 1, Essentials: 97, Rewards: 1}, model.BucketEssentials, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := Rebalance(tc.current, tc.changed, tc.value)

			require.InDelta(t, 100, next.Sum(), 1e-9)
			for _, b := range model.Buckets {
				w := next.Weight(b)
				require.GreaterOrEqual(t, w, 0.0, "bucket %s", b)
				require.LessOrEqual(t, w, 100.0, "bucket %s", b)
			}
		})
	}
}

func TestRebalanceNoOpIsIdentity(t *testing.T) {
	current := model.DefaultAllocation()

	next := Rebalance(current, model.BucketGrowth, current.Growth)

	require.Equal(t, current, next)
}

func TestRebalancePreservesRatios(t *testing.T) {
	// Three equal untouched buckets must stay equal after redistribution.
	current := model.Allocation{Growth: 10, Stability: 30, Essentials: 30, Rewards: 30}

	next := Rebalance(current, model.BucketGrowth, 40)

	require.Equal(t, 40.0, next.Growth)
	require.Equal(t, 20.0, next.Stability)
	require.Equal(t, 20.0, next.Essentials)
	require.Equal(t, 20.0, next.Rewards)
}

func TestRebalanceCorrectionGoesToFirstOther(t *testing.T) {
	// 50 split over three 20s rounds each share 16.67 -> 17, overshooting by
	// one point. The surplus comes off the first untouched bucket in
	// canonical order (stability, since growth changed).
	current := model.Allocation{Growth: 40, Stability: 20, Essentials: 20, Rewards: 20}

	next := Rebalance(current, model.BucketGrowth, 50)

	require.Equal(t, 50.0, next.Growth)
	require.Equal(t, 16.0, next.Stability)
	require.Equal(t, 17.0, next.Essentials)
	require.Equal(t, 17.0, next.Rewards)
	require.InDelta(t, 100, next.Sum(), 1e-9)
}

func TestRebalanceAllOthersZero(t *testing.T) {
	// Nothing to redistribute against: the others stay at zero and the total
	// drifts below 100. This transient must be rejected at commit time.
	current := model.Allocation{Growth: 100}

	next := Rebalance(current, model.BucketGrowth, 60)

	require.Equal(t, 60.0, next.Growth)
	require.Equal(t, 0.0, next.Stability)
	require.Equal(t, 0.0, next.Essentials)
	require.Equal(t, 0.0, next.Rewards)
	require.ErrorIs(t, next.Validate(), model.ErrInvalidAllocation)
}

func TestRebalanceClampsNewValue(t *testing.T) {
	next := Rebalance(model.DefaultAllocation(), model.BucketGrowth, 150)
	require.Equal(t, 100.0, next.Growth)
	require.InDelta(t, 100, next.Sum(), 1e-9)

	next = Rebalance(model.DefaultAllocation(), model.BucketGrowth, -10)
	require.Equal(t, 0.0, next.Growth)
	require.InDelta(t, 100, next.Sum(), 1e-9)
}

func TestRebalanceDoesNotMutateInput(t *testing.T) {
	current := model.DefaultAllocation()
	snapshot := current

	_ = Rebalance(current, model.BucketRewards, 35)

	require.Equal(t, snapshot, current)
}
