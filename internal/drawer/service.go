package drawer

import (
	"context"
	"time"

	"kasirpos/internal/logger"
	"kasirpos/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for cash-drawer movements.
type Service interface {
	Record(ctx context.Context, params RecordParams) (*Entry, error)
	Entries(ctx context.Context, sessionID string) ([]Entry, error)
}

type service struct {
	repo Repository
	tctx *session.TerminalContext
	now  func() time.Time
}

func NewService(repo Repository, tctx *session.TerminalContext) Service {
	return &service{repo: repo, tctx: tctx, now: time.Now}
}

// Record validates and appends one cash movement scoped to the active
// session. Duplicate amounts and descriptions are allowed; the ledger is a
// log, not a set.
func (s *service) Record(ctx context.Context, params RecordParams) (*Entry, error) {
	if !params.Kind.Valid() {
		return nil, ErrInvalidKind
	}
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	sessionID := s.tctx.SessionID()
	if sessionID == "" {
		return nil, ErrNoSession
	}

	entry := &Entry{
		ID:          uuid.NewString(),
		SessionID:   sessionID,
		Kind:        params.Kind,
		Amount:      params.Amount,
		Description: params.Description,
		RecordedAt:  s.now(),
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("cash drawer entry recorded",
		zap.String("kind", string(entry.Kind)),
		zap.Int64("amount", int64(entry.Amount)),
	)

	return entry, nil
}

func (s *service) Entries(ctx context.Context, sessionID string) ([]Entry, error) {
	return s.repo.ListBySession(ctx, sessionID)
}
