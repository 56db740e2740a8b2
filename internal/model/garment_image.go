package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// GarmentImageStore defines persistence operations for garment photos.
type GarmentImageStore interface {
	Create(ctx context.Context, image GarmentImage) (GarmentImage, error)
	GetByID(ctx context.Context, id uuid.UUID) (GarmentImage, error)
	ListByGarment(ctx context.Context, garmentID uuid.UUID) ([]GarmentImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GarmentImage is a photo of a garment. The image bytes live in object
// storage under ObjectKey, the row holds metadata only.
type GarmentImage struct {
	ID        uuid.UUID
	URL       string
	FileName  string
	FileSize  int64
	MimeType  string
	ObjectKey string
	GarmentID uuid.UUID
	CreatedAt time.Time
}
