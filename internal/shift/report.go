package shift

import (
	"time"

	"kasirpos/internal/money"
)

// Report is the end-of-shift reconciliation read-model. It is derived fresh
// from the two append-only logs on every request; nothing here is cached,
// because the cashier may keep recording entries while the report is open.
type Report struct {
	SessionID   string
	CashierName string
	GeneratedAt time.Time

	TotalSales  money.Amount
	CashSales   money.Amount
	DebitSales  money.Amount
	CreditSales money.Amount
	QRISSales   money.Amount

	OpeningFloat money.Amount
	Withdrawals  money.Amount

	// ExpectedCashInDrawer = OpeningFloat + CashSales - Withdrawals.
	ExpectedCashInDrawer money.Amount

	TransactionCount int
}
