// Package model holds the domain records shared across the himoney engine.
package model

import (
	"fmt"
	"strings"
)

// Bucket identifies one of the four fixed budget partitions.
type Bucket string

const (
	BucketGrowth     Bucket = "growth"
	BucketStability  Bucket = "stability"
	BucketEssentials Bucket = "essentials"
	BucketRewards    Bucket = "rewards"
)

// Buckets is the canonical bucket ordering. Iteration over buckets must always
// use this slice; the rebalance rounding correction depends on the order.
var Buckets = []Bucket{BucketGrowth, BucketStability, BucketEssentials, BucketRewards}

// ParseBucket resolves a user-supplied bucket name.
func ParseBucket(s string) (Bucket, error) {
	b := Bucket(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Buckets {
		if b == known {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBucket, s)
}

// Label returns the display name for a bucket.
func (b Bucket) Label() string {
	switch b {
	case BucketGrowth:
		return "Growth"
	case BucketStability:
		return "Stability"
	case BucketEssentials:
		return "Essentials"
	case BucketRewards:
		return "Rewards"
	}
	return string(b)
}
