package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries the authenticated user's id through request
// contexts. The middleware sets it, handlers read it.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
