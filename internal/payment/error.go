package payment

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidMethod      = errors.New("unknown payment method")
	ErrInsufficientTender = errors.New("amount tendered is less than the total due")
	ErrNoSession          = errors.New("no active cashier session")

	// -- Database & Operation Failures --
	ErrFailedAppendTransaction = errors.New("failed to save completed transaction")
	ErrFailedListTransactions  = errors.New("failed to list completed transactions")
)
