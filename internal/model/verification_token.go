package model

import (
	"context"
	"time"
)

// VerificationTokenStore defines persistence operations for email verification tokens.
// Tokens are intentionally not related to users: verification happens before a
// user row may exist.
type VerificationTokenStore interface {
	Create(ctx context.Context, token VerificationToken) (VerificationToken, error)
	// Consume deletes the (identifier, token) pair and returns it.
	// Returns ErrNotFound if the pair is absent or was already consumed.
	Consume(ctx context.Context, identifier, token string) (VerificationToken, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// VerificationToken is a single-use email verification token.
// (identifier, token) is compound-unique and token alone is unique.
type VerificationToken struct {
	Identifier string
	Token      string
	Expires    time.Time
}

// Expired reports whether the token is past its expiry at the given time.
func (t VerificationToken) Expired(now time.Time) bool {
	return !t.Expires.After(now)
}
