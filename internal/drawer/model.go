package drawer

import (
	"time"

	"kasirpos/internal/money"
)

type EntryKind string

const (
	KindOpeningFloat   EntryKind = "OPENING_FLOAT"
	KindCashWithdrawal EntryKind = "CASH_WITHDRAWAL"
)

func (k EntryKind) Valid() bool {
	return k == KindOpeningFloat || k == KindCashWithdrawal
}

// Entry is one manual cash movement. The ledger is append-only: a mistake is
// corrected by recording a compensating entry, never by editing.
type Entry struct {
	ID          string
	SessionID   string
	Kind        EntryKind
	Amount      money.Amount
	Description string
	RecordedAt  time.Time
}

// RecordParams is the input of the cash-drawer dialog.
type RecordParams struct {
	Kind        EntryKind
	Amount      money.Amount
	Description string
}
