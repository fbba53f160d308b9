package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventKind classifies ledger mutation events.
type EventKind int

const (
	// EventNone means the mutation carried no side effect for other components.
	EventNone EventKind = iota

	// EventFirstFunding fires once, when a mutation takes the ledger out of
	// the empty state. The goal tracker seeds the initial history snapshot
	// from it if the history is still empty.
	EventFirstFunding
)

// Event is the explicit value a mutation returns instead of performing hidden
// cross-component calls.
type Event struct {
	Kind  EventKind
	Total decimal.Decimal
	At    time.Time
}
