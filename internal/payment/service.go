package payment

import (
	"context"
	"time"

	"kasirpos/internal/logger"
	"kasirpos/internal/order"
	"kasirpos/internal/session"
	"kasirpos/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReceiptEmitter is the printing collaborator, invoked exactly once per
// finalized sale. Printing is best-effort: a failure never unwinds the sale.
type ReceiptEmitter interface {
	Emit(ctx context.Context, tx *CompletedTransaction) error
}

// Service runs the payment completion workflow: validate tender, compute
// change, persist the immutable transaction, trigger the receipt, clear the
// order.
type Service interface {
	Finalize(ctx context.Context, ord *order.Order, params FinalizeParams) (*CompletedTransaction, error)
	TransactionsBySession(ctx context.Context, sessionID string) ([]CompletedTransaction, error)
}

type service struct {
	repo     Repository
	receipts ReceiptEmitter
	tctx     *session.TerminalContext
	now      func() time.Time
}

func NewService(repo Repository, receipts ReceiptEmitter, tctx *session.TerminalContext) Service {
	return &service{repo: repo, receipts: receipts, tctx: tctx, now: time.Now}
}

// Finalize is deliberately not idempotent: calling it twice for the same
// order produces two transactions. The dispatcher's single-open-modal rule
// guarantees at most one call per user payment action.
func (s *service) Finalize(ctx context.Context, ord *order.Order, params FinalizeParams) (*CompletedTransaction, error) {
	if ord.IsEmpty() {
		return nil, order.ErrEmptyOrder
	}
	if !params.Method.Valid() {
		return nil, ErrInvalidMethod
	}
	if s.tctx.SessionID() == "" {
		return nil, ErrNoSession
	}

	total := ord.GrandTotal()
	tendered := params.AmountTendered
	if params.Method == MethodCash {
		if tendered < total {
			return nil, ErrInsufficientTender
		}
	} else {
		// Card and QRIS charges are always exact; whatever the dialog held
		// for tender is ignored.
		tendered = total
	}

	tx := &CompletedTransaction{
		ID:             uuid.NewString(),
		Code:           utils.GenerateTransactionCode(),
		SessionID:      s.tctx.SessionID(),
		CashierName:    s.tctx.CashierName(),
		Lines:          ord.Snapshot(),
		TotalAmount:    total,
		Method:         params.Method,
		AmountTendered: tendered,
		Change:         tendered - total,
		PaidAt:         s.now(),
	}

	// Persist before clearing the order: if the append fails the sale is
	// still on screen and the cashier retries.
	if err := s.repo.Append(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.receipts.Emit(ctx, tx); err != nil {
		// The payment is a fact at this point; the receipt is not.
		logger.FromCtx(ctx).Warn("receipt emission failed",
			zap.String("code", tx.Code), zap.Error(err))
	}

	ord.Clear()

	logger.FromCtx(ctx).Info("transaction finalized",
		zap.String("code", tx.Code),
		zap.String("method", string(tx.Method)),
		zap.Int64("total", int64(tx.TotalAmount)),
		zap.Int64("change", int64(tx.Change)),
	)

	return tx, nil
}

func (s *service) TransactionsBySession(ctx context.Context, sessionID string) ([]CompletedTransaction, error) {
	return s.repo.ListBySession(ctx, sessionID)
}
