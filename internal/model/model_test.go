package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"10", "10"},
		{"10.50", "10.5"},
		{" 20 ", "20"},
		{"abc", "0"},
		{"", "0"},
		{"-5", "0"},
		{"1e3", "1000"},
	}

	for _, tc := range cases {
		got := ParseAmount(tc.raw)
		require.True(t, got.Equal(decimal.RequireFromString(tc.want)),
			"ParseAmount(%q) = %s, want %s", tc.raw, got, tc.want)
	}
}

func TestParseBucket(t *testing.T) {
	b, err := ParseBucket("Growth")
	require.NoError(t, err)
	require.Equal(t, BucketGrowth, b)

	b, err = ParseBucket("  rewards ")
	require.NoError(t, err)
	require.Equal(t, BucketRewards, b)

	_, err = ParseBucket("vacation")
	require.ErrorIs(t, err, ErrUnknownBucket)
}

func TestAllocationValidate(t *testing.T) {
	require.NoError(t, DefaultAllocation().Validate())
	require.NoError(t, Allocation{Growth: 100}.Validate())

	require.ErrorIs(t, Allocation{Growth: 50, Stability: 49}.Validate(), ErrInvalidAllocation)
	require.ErrorIs(t, Allocation{Growth: 101, Stability: -1}.Validate(), ErrInvalidAllocation)
	require.ErrorIs(t, Allocation{}.Validate(), ErrInvalidAllocation)
}

func TestAllocationWeightAccessors(t *testing.T) {
	a := DefaultAllocation()
	for _, b := range Buckets {
		a.SetWeight(b, a.Weight(b)+1)
	}
	require.Equal(t, Allocation{Growth: 26, Stability: 16, Essentials: 51, Rewards: 11}, a)
}

func TestBucketOrderIsCanonical(t *testing.T) {
	// The rebalance correction tie-break depends on this exact order.
	require.Equal(t, []Bucket{BucketGrowth, BucketStability, BucketEssentials, BucketRewards}, Buckets)
}
