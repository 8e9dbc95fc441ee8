package drawer

import (
	"context"
	"database/sql"
	"fmt"

	"kasirpos/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	ListBySession(ctx context.Context, sessionID string) ([]Entry, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, entry *Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cash_drawer_entries (id, session_id, kind, amount, description, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ID, entry.SessionID, entry.Kind, entry.Amount, entry.Description, entry.RecordedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to append cash drawer entry",
			zap.String("kind", string(entry.Kind)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %v", ErrFailedAppendEntry, err)
	}

	return nil
}

func (r *repository) ListBySession(ctx context.Context, sessionID string) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, kind, amount, description, recorded_at
		FROM cash_drawer_entries
		WHERE session_id = $1
		ORDER BY recorded_at
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedListEntries, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &e.Amount, &e.Description, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedListEntries, err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
