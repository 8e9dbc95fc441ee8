package drawer

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidAmount = errors.New("cash movement amount must be positive")
	ErrInvalidKind   = errors.New("unknown cash movement kind")
	ErrNoSession     = errors.New("no active cashier session")

	// -- Database & Operation Failures --
	ErrFailedAppendEntry = errors.New("failed to append cash drawer entry")
	ErrFailedListEntries = errors.New("failed to list cash drawer entries")
)
