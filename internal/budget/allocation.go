package budget

import (
	"github.com/pkg/errors"

	"github.com/jeremy-dai/hi-money-sub001/internal/model"
)

// AllocationModel guards the committed allocation. Every observable state
// satisfies the sum-to-100 invariant; candidate weight sets are only accepted
// wholesale through ApplyRebalance.
type AllocationModel struct {
	current model.Allocation
}

// NewAllocationModel validates the initial weights before holding them.
func NewAllocationModel(a model.Allocation) (*AllocationModel, error) {
	if err := a.Validate(); err != nil {
		return nil, errors.Wrap(err, "initial allocation")
	}
	return &AllocationModel{current: a}, nil
}

// Weights returns the committed allocation.
func (m *AllocationModel) Weights() model.Allocation {
	return m.current
}

// ApplyRebalance atomically replaces the whole weight set. The candidate is
// validated first; on rejection the previous allocation remains visible
// unchanged. Callers are expected to produce candidates with Rebalance, which
// guarantees validity except in the all-others-zero transient.
func (m *AllocationModel) ApplyRebalance(next model.Allocation) error {
	if err := next.Validate(); err != nil {
		return err
	}
	m.current = next
	return nil
}
