package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User represents an application user. Email is unique across all users.
type User struct {
	ID            uuid.UUID
	Name          *string
	Email         string
	EmailVerified *time.Time
	Image         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
