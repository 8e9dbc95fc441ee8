package order

import "kasirpos/internal/money"

// Line is one item row of the in-progress sale. Discount is per unit and is
// clamped to the unit price, so the effective unit total never goes negative.
type Line struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice money.Amount
	Discount  money.Amount
	Total     money.Amount
}

// recompute re-derives Total after any mutation.
func (l *Line) recompute() {
	if l.Discount < 0 {
		l.Discount = 0
	}
	if l.Discount > l.UnitPrice {
		l.Discount = l.UnitPrice
	}
	l.Total = (l.UnitPrice - l.Discount) * money.Amount(l.Quantity)
}

// LineUpdate carries the fields the edit-line dialog may change.
// Nil means "leave as is".
type LineUpdate struct {
	Quantity  *int
	UnitPrice *money.Amount
	Discount  *money.Amount
}
