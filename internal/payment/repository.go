package payment

import (
	"context"
	"database/sql"
	"fmt"

	"kasirpos/internal/logger"
	"kasirpos/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Append(ctx context.Context, tx *CompletedTransaction) error
	ListBySession(ctx context.Context, sessionID string) ([]CompletedTransaction, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Append writes the transaction header and its lines in one database
// transaction, so a finalized sale is either fully persisted or not at all.
func (r *repository) Append(ctx context.Context, tx *CompletedTransaction) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedAppendTransaction, err)
	}
	defer dbTx.Rollback()

	_, err = dbTx.ExecContext(ctx, `
		INSERT INTO completed_transactions
			(id, code, session_id, cashier_name, method, total_amount, amount_tendered, change_due, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, tx.ID, tx.Code, tx.SessionID, tx.CashierName, tx.Method,
		tx.TotalAmount, tx.AmountTendered, tx.Change, tx.PaidAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert transaction header",
			zap.String("code", tx.Code), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrFailedAppendTransaction, err)
	}

	for _, line := range tx.Lines {
		_, err = dbTx.ExecContext(ctx, `
			INSERT INTO transaction_lines
				(id, transaction_id, sku, name, quantity, unit_price, discount, line_total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, uuid.NewString(), tx.ID, line.SKU, line.Name, line.Quantity,
			line.UnitPrice, line.Discount, line.Total)
		if err != nil {
			logger.FromCtx(ctx).Error("failed to insert transaction line",
				zap.String("code", tx.Code), zap.String("sku", line.SKU), zap.Error(err))
			return fmt.Errorf("%w: %v", ErrFailedAppendTransaction, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedAppendTransaction, err)
	}

	return nil
}

func (r *repository) ListBySession(ctx context.Context, sessionID string) ([]CompletedTransaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, code, session_id, cashier_name, method, total_amount, amount_tendered, change_due, paid_at
		FROM completed_transactions
		WHERE session_id = $1
		ORDER BY paid_at
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListTransactions, err)
	}
	defer rows.Close()

	var txs []CompletedTransaction
	for rows.Next() {
		var tx CompletedTransaction
		if err := rows.Scan(&tx.ID, &tx.Code, &tx.SessionID, &tx.CashierName, &tx.Method,
			&tx.TotalAmount, &tx.AmountTendered, &tx.Change, &tx.PaidAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListTransactions, err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListTransactions, err)
	}

	for i := range txs {
		lines, err := r.listLines(ctx, txs[i].ID)
		if err != nil {
			return nil, err
		}
		txs[i].Lines = lines
	}

	return txs, nil
}

func (r *repository) listLines(ctx context.Context, transactionID string) ([]order.Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT sku, name, quantity, unit_price, discount, line_total
		FROM transaction_lines
		WHERE transaction_id = $1
	`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListTransactions, err)
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var l order.Line
		if err := rows.Scan(&l.SKU, &l.Name, &l.Quantity, &l.UnitPrice, &l.Discount, &l.Total); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListTransactions, err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}
