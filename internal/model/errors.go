package model

import "errors"

var (
	// ErrInvalidAllocation is returned when weights do not sum to 100 or fall outside [0,100]
	ErrInvalidAllocation = errors.New("allocation weights must lie in [0,100] and sum to 100")

	// ErrInvalidName is returned for empty or whitespace-only account names
	ErrInvalidName = errors.New("name must not be empty")

	// ErrInvalidGoal is returned for an empty goal name or non-positive target amount
	ErrInvalidGoal = errors.New("goal requires a name and a positive target amount")

	// ErrInvalidAmount is returned for amounts that cannot be accepted as-is
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrIndexOutOfRange signals a stale account index; a programming error, not user input
	ErrIndexOutOfRange = errors.New("account index out of range")

	// ErrUnknownBucket is returned for a category name outside the fixed taxonomy
	ErrUnknownBucket = errors.New("unknown bucket")
)
