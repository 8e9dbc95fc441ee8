package order

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid line quantity")
	ErrInvalidPrice    = errors.New("invalid line price")

	// -- Resource State --
	ErrLineNotFound = errors.New("order line not found")
	ErrEmptyOrder   = errors.New("order is empty")
)
