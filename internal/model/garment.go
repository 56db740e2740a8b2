package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GarmentStore defines persistence operations for garments.
type GarmentStore interface {
	Create(ctx context.Context, garment Garment) (Garment, error)
	// GetByID loads a garment together with its images and tags.
	GetByID(ctx context.Context, id uuid.UUID) (Garment, error)
	// ListByUser loads a user's garments, newest first, with images and tags.
	ListByUser(ctx context.Context, userID uuid.UUID, filter GarmentFilter) ([]Garment, error)
	Update(ctx context.Context, garment Garment) (Garment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status GarmentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Garment represents a wardrobe item owned by one user.
type Garment struct {
	ID               uuid.UUID
	Name             string
	Category         string
	Material         *string
	Color            *string
	Size             *string
	Brand            *string
	PurchaseDate     *time.Time
	Cost             *float64
	CareInstructions *string
	Status           GarmentStatus
	Notes            *string
	UserID           uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Images []GarmentImage
	Tags   []Tag
}

// GarmentFilter narrows garment listing. Zero values mean no filtering.
type GarmentFilter struct {
	Status   GarmentStatus
	Category string
}

// GarmentStatus enumerates laundry states. The set is closed, the stored
// strings are part of the persisted contract.
type GarmentStatus string

const (
	// StatusClean is the default state of a new garment.
	StatusClean GarmentStatus = "CLEAN"
	// StatusDirty marks a garment that needs a wash before wearing.
	StatusDirty GarmentStatus = "DIRTY"
	// StatusWorn2x marks a garment worn but still wearable.
	StatusWorn2x GarmentStatus = "WORN_2X"
	// StatusNeedsWashing marks a garment queued for laundry.
	StatusNeedsWashing GarmentStatus = "NEEDS_WASHING"
)

// Valid reports whether s is one of the four defined statuses.
func (s GarmentStatus) Valid() bool {
	switch s {
	case StatusClean, StatusDirty, StatusWorn2x, StatusNeedsWashing:
		return true
	}
	return false
}

// NextWear returns the status after one more wear, following the laundry
// cycle CLEAN -> WORN_2X -> DIRTY -> NEEDS_WASHING. Wearing a garment that
// already needs washing keeps it there.
func (s GarmentStatus) NextWear() GarmentStatus {
	switch s {
	case StatusClean:
		return StatusWorn2x
	case StatusWorn2x:
		return StatusDirty
	case StatusDirty:
		return StatusNeedsWashing
	default:
		return StatusNeedsWashing
	}
}
