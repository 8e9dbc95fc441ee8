package terminal

import "errors"

var (
	ErrModalOpen       = errors.New("another dialog is open")
	ErrNoMatchingModal = errors.New("no matching dialog open")
	ErrPriceLocked     = errors.New("unit price is locked")
	ErrProductNotFound = errors.New("product not found")
)
