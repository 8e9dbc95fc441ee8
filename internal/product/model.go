package product

import "kasirpos/internal/money"

type Product struct {
	SKU       string
	Name      string
	Barcode   string
	UnitPrice money.Amount
	Active    bool
}
