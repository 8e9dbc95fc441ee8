package heldorder

import (
	"time"

	"kasirpos/internal/money"
	"kasirpos/internal/order"
)

// HeldOrder is an immutable snapshot of a suspended sale, a "tab" the
// cashier can recall later. It lives only as long as it stays held: recall
// removes it from the registry.
type HeldOrder struct {
	ID            string
	Lines         []order.Line
	Total         money.Amount
	CustomerLabel string
	SuspendedAt   time.Time
}

// FirstLineName is what the recall dialog shows and searches when no
// customer label was written down.
func (h *HeldOrder) FirstLineName() string {
	if len(h.Lines) == 0 {
		return ""
	}
	return h.Lines[0].Name
}
