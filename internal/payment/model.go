package payment

import (
	"time"

	"kasirpos/internal/money"
	"kasirpos/internal/order"
)

type Method string

const (
	MethodCash   Method = "CASH"
	MethodDebit  Method = "DEBIT"
	MethodCredit Method = "CREDIT"
	MethodQRIS   Method = "QRIS"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodDebit, MethodCredit, MethodQRIS:
		return true
	}
	return false
}

// CompletedTransaction is the immutable record of a finalized sale. It is
// written exactly once and never updated; the shift report reads it back by
// session.
type CompletedTransaction struct {
	ID             string
	Code           string
	SessionID      string
	CashierName    string
	Lines          []order.Line
	TotalAmount    money.Amount
	Method         Method
	AmountTendered money.Amount
	Change         money.Amount
	PaidAt         time.Time
}

// FinalizeParams is the input of the payment dialog. AmountTendered is only
// meaningful for cash; any value supplied for other methods is overridden.
type FinalizeParams struct {
	Method         Method
	AmountTendered money.Amount
}
