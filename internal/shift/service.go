package shift

import (
	"context"
	"time"

	"kasirpos/internal/drawer"
	"kasirpos/internal/payment"
	"kasirpos/internal/session"
)

// Service builds the reconciliation report for a cashier session.
type Service interface {
	Build(ctx context.Context, sessionID string) (*Report, error)
}

type service struct {
	drawerRepo drawer.Repository
	txRepo     payment.Repository
	tctx       *session.TerminalContext
	now        func() time.Time
}

func NewService(drawerRepo drawer.Repository, txRepo payment.Repository, tctx *session.TerminalContext) Service {
	return &service{drawerRepo: drawerRepo, txRepo: txRepo, tctx: tctx, now: time.Now}
}

func (s *service) Build(ctx context.Context, sessionID string) (*Report, error) {
	entries, err := s.drawerRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		SessionID:        sessionID,
		CashierName:      s.tctx.CashierName(),
		GeneratedAt:      s.now(),
		TransactionCount: len(txs),
	}

	for _, tx := range txs {
		report.TotalSales += tx.TotalAmount
		switch tx.Method {
		case payment.MethodCash:
			report.CashSales += tx.TotalAmount
		case payment.MethodDebit:
			report.DebitSales += tx.TotalAmount
		case payment.MethodCredit:
			report.CreditSales += tx.TotalAmount
		case payment.MethodQRIS:
			report.QRISSales += tx.TotalAmount
		}
	}

	for _, e := range entries {
		switch e.Kind {
		case drawer.KindOpeningFloat:
			report.OpeningFloat += e.Amount
		case drawer.KindCashWithdrawal:
			report.Withdrawals += e.Amount
		}
	}

	report.ExpectedCashInDrawer = report.OpeningFloat + report.CashSales - report.Withdrawals

	return report, nil
}
