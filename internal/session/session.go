package session

import (
	"context"
	"time"

	"kasirpos/internal/logger"

	"github.com/google/uuid"
)

// CashierSession scopes cash-drawer movements and completed sales to one
// shift. A new session starts at terminal login; historical records keep
// referencing its ID after logout.
type CashierSession struct {
	ID          string
	CashierName string
	StartedAt   time.Time
}

func New(cashierName string) *CashierSession {
	return &CashierSession{
		ID:          uuid.NewString(),
		CashierName: cashierName,
		StartedAt:   time.Now(),
	}
}

// TerminalContext carries the identity every engine component needs.
// It replaces the page-level globals of older terminals: constructed once at
// session start, handed to services explicitly, torn down at logout.
type TerminalContext struct {
	Session   *CashierSession
	StoreName string
}

func NewTerminalContext(sess *CashierSession, storeName string) *TerminalContext {
	return &TerminalContext{Session: sess, StoreName: storeName}
}

// SessionID is safe to call after End; persisted records written earlier
// keep their scope, new writes get an empty scope and are rejected upstream.
func (t *TerminalContext) SessionID() string {
	if t == nil || t.Session == nil {
		return ""
	}
	return t.Session.ID
}

func (t *TerminalContext) CashierName() string {
	if t == nil || t.Session == nil {
		return ""
	}
	return t.Session.CashierName
}

// End clears the active session at logout. Persisted history is untouched.
func (t *TerminalContext) End() {
	t.Session = nil
}

// WithContext attaches the session scope for log correlation.
func (t *TerminalContext) WithContext(ctx context.Context) context.Context {
	id := t.SessionID()
	if id == "" {
		return ctx
	}
	return logger.WithSessionID(ctx, id)
}
