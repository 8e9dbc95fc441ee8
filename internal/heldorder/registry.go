package heldorder

import (
	"strconv"
	"strings"
	"time"

	"kasirpos/internal/order"
)

// Registry keeps suspended orders in insertion order. It is owned by the
// single terminal context, so no locking is involved.
type Registry struct {
	held []HeldOrder
	now  func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{now: time.Now}
}

// Hold snapshots the active order into the registry and clears it.
// An empty order cannot be held.
func (r *Registry) Hold(ord *order.Order, customerLabel string) (*HeldOrder, error) {
	if ord.IsEmpty() {
		return nil, order.ErrEmptyOrder
	}

	h := HeldOrder{
		ID:            r.freshID(),
		Lines:         ord.Snapshot(),
		Total:         ord.GrandTotal(),
		CustomerLabel: customerLabel,
		SuspendedAt:   r.now(),
	}
	r.held = append(r.held, h)
	ord.Clear()

	return &h, nil
}

// Search matches the query case-insensitively against each held order's
// first-line name and customer label. Results keep registry insertion order;
// an empty query returns everything.
func (r *Registry) Search(query string) []HeldOrder {
	query = strings.ToLower(strings.TrimSpace(query))

	var matches []HeldOrder
	for _, h := range r.held {
		if query == "" ||
			strings.Contains(strings.ToLower(h.FirstLineName()), query) ||
			strings.Contains(strings.ToLower(h.CustomerLabel), query) {
			matches = append(matches, h)
		}
	}
	return matches
}

// Recall moves a held order's lines back into the active order, replacing
// its content wholesale, and removes the snapshot from the registry.
// Whatever was in the active order is discarded: last recall wins.
func (r *Registry) Recall(id string, ord *order.Order) error {
	for i, h := range r.held {
		if h.ID == id {
			ord.Replace(h.Lines)
			r.held = append(r.held[:i], r.held[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *Registry) List() []HeldOrder {
	out := make([]HeldOrder, len(r.held))
	copy(out, r.held)
	return out
}

func (r *Registry) Len() int {
	return len(r.held)
}

// freshID derives an id from the creation timestamp, suffixed when two holds
// land on the same clock tick.
func (r *Registry) freshID() string {
	base := strconv.FormatInt(r.now().UnixMilli(), 10)
	id := base
	for n := 1; r.exists(id); n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	return id
}

func (r *Registry) exists(id string) bool {
	for _, h := range r.held {
		if h.ID == id {
			return true
		}
	}
	return false
}
