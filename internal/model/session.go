package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionStore defines persistence operations for login sessions.
type SessionStore interface {
	Create(ctx context.Context, session Session) (Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	GetByToken(ctx context.Context, sessionToken string) (Session, error)
	DeleteByToken(ctx context.Context, sessionToken string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Session is a login session identified by a unique opaque token.
// Expiry is checked by callers, rows do not expire themselves.
type Session struct {
	ID           uuid.UUID
	SessionToken string
	UserID       uuid.UUID
	Expires      time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.Expires.After(now)
}
