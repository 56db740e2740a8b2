package model

import (
	"context"

	"github.com/google/uuid"
)

// AccountStore defines persistence operations for external provider accounts.
type AccountStore interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByProvider(ctx context.Context, provider, providerAccountID string) (Account, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Account links a user to one external auth provider identity.
// (provider, provider_account_id) is unique.
type Account struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              string
	Provider          string
	ProviderAccountID string
	RefreshToken      *string
	AccessToken       *string
	ExpiresAt         *int64
	TokenType         *string
	Scope             *string
	IDToken           *string
	SessionState      *string
}
