package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TagStore defines persistence operations for tags and the garment<->tag
// association.
type TagStore interface {
	Create(ctx context.Context, tag Tag) (Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (Tag, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (Tag, error)
	// ListByUser returns a user's tags with the number of garments each is
	// attached to.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]TagWithCount, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Attach inserts the (garmentID, tagID) association. It is idempotent and
	// reports whether a new row was inserted.
	Attach(ctx context.Context, garmentID, tagID uuid.UUID) (bool, error)
	// Detach removes the association. Removing an absent pair is a no-op.
	Detach(ctx context.Context, garmentID, tagID uuid.UUID) error
	ListByGarment(ctx context.Context, garmentID uuid.UUID) ([]Tag, error)
}

// Tag is a user-defined label. (name, user_id) is unique, two users may
// use the same tag name independently.
type Tag struct {
	ID        uuid.UUID
	Name      string
	Color     *string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// TagWithCount is a tag together with the number of garments it is attached to.
type TagWithCount struct {
	Tag
	GarmentCount int64
}
