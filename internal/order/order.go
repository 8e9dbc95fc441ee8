package order

import (
	"kasirpos/internal/money"
	"kasirpos/internal/product"
)

// Order is the single in-progress sale owned by the terminal. Line order is
// insertion order; selection tracks the row the cashier is acting on.
// All totals are derived on demand, never cached.
type Order struct {
	lines    []Line
	selected int // index into lines, -1 when nothing is selected
}

func New() *Order {
	return &Order{selected: -1}
}

// AddOrIncrement merges a product into an existing line with the same SKU or
// appends a new one. The affected line becomes the selection.
func (o *Order) AddOrIncrement(p product.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	for i := range o.lines {
		if o.lines[i].SKU == p.SKU {
			o.lines[i].Quantity += qty
			o.lines[i].recompute()
			o.selected = i
			return nil
		}
	}

	line := Line{
		SKU:       p.SKU,
		Name:      p.Name,
		Quantity:  qty,
		UnitPrice: p.UnitPrice,
		Discount:  0,
	}
	line.recompute()
	o.lines = append(o.lines, line)
	o.selected = len(o.lines) - 1
	return nil
}

// UpdateLine applies an edit-line dialog result and recomputes the total.
func (o *Order) UpdateLine(index int, upd LineUpdate) error {
	if index < 0 || index >= len(o.lines) {
		return ErrLineNotFound
	}

	line := &o.lines[index]
	if upd.Quantity != nil {
		if *upd.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		line.Quantity = *upd.Quantity
	}
	if upd.UnitPrice != nil {
		if *upd.UnitPrice < 0 {
			return ErrInvalidPrice
		}
		line.UnitPrice = *upd.UnitPrice
	}
	if upd.Discount != nil {
		if *upd.Discount < 0 {
			return ErrInvalidPrice
		}
		line.Discount = *upd.Discount
	}

	line.recompute()
	return nil
}

// RemoveLine deletes a row and re-clamps the selection to the last valid
// index, or clears it when the order becomes empty.
func (o *Order) RemoveLine(index int) error {
	if index < 0 || index >= len(o.lines) {
		return ErrLineNotFound
	}

	o.lines = append(o.lines[:index], o.lines[index+1:]...)
	if len(o.lines) == 0 {
		o.selected = -1
	} else if o.selected >= len(o.lines) {
		o.selected = len(o.lines) - 1
	}
	return nil
}

func (o *Order) Clear() {
	o.lines = nil
	o.selected = -1
}

// GrandTotal is always recomputed from the lines.
func (o *Order) GrandTotal() money.Amount {
	var total money.Amount
	for i := range o.lines {
		total += o.lines[i].Total
	}
	return total
}

func (o *Order) IsEmpty() bool {
	return len(o.lines) == 0
}

func (o *Order) Len() int {
	return len(o.lines)
}

// Line returns a copy of the row at index.
func (o *Order) Line(index int) (Line, error) {
	if index < 0 || index >= len(o.lines) {
		return Line{}, ErrLineNotFound
	}
	return o.lines[index], nil
}

// Selected returns the selected row index, -1 when nothing is selected.
func (o *Order) Selected() int {
	return o.selected
}

func (o *Order) SelectLine(index int) error {
	if index < 0 || index >= len(o.lines) {
		return ErrLineNotFound
	}
	o.selected = index
	return nil
}

// Snapshot deep-copies the lines, for holding an order or freezing it into a
// completed transaction.
func (o *Order) Snapshot() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Replace swaps the whole order content, used when a held order is recalled.
// The previous lines are discarded wholesale.
func (o *Order) Replace(lines []Line) {
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	if len(o.lines) == 0 {
		o.selected = -1
	} else {
		o.selected = len(o.lines) - 1
	}
}
