package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harryneopotter/hanger-on-server/internal/model"
)

var _ model.GarmentImageStore = (*GarmentImageRepository)(nil)

type GarmentImageRepository struct {
	db *Connection
}

func NewGarmentImageRepository(db *Connection) *GarmentImageRepository {
	return &GarmentImageRepository{db: db}
}

const garmentImageColumns = `id, url, file_name, file_size, mime_type, object_key, garment_id, created_at`

func (r *GarmentImageRepository) Create(ctx context.Context, image model.GarmentImage) (model.GarmentImage, error) {
	query := `INSERT INTO garment_images (` + garmentImageColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + garmentImageColumns

	var saved model.GarmentImage
	err := getQuerier(ctx, r.db).QueryRow(ctx, query,
		image.ID, image.URL, image.FileName, image.FileSize, image.MimeType,
		image.ObjectKey, image.GarmentID, image.CreatedAt,
	).Scan(
		&saved.ID, &saved.URL, &saved.FileName, &saved.FileSize, &saved.MimeType,
		&saved.ObjectKey, &saved.GarmentID, &saved.CreatedAt,
	)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return model.GarmentImage{}, fmt.Errorf("garment image: %w", mapped)
		}
		return model.GarmentImage{}, fmt.Errorf("failed to create garment image: %w", err)
	}

	return saved, nil
}

func (r *GarmentImageRepository) GetByID(ctx context.Context, id uuid.UUID) (model.GarmentImage, error) {
	query := `SELECT ` + garmentImageColumns + ` FROM garment_images WHERE id = $1`

	var image model.GarmentImage
	err := getQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&image.ID, &image.URL, &image.FileName, &image.FileSize, &image.MimeType,
		&image.ObjectKey, &image.GarmentID, &image.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.GarmentImage{}, model.ErrNotFound
		}
		return model.GarmentImage{}, fmt.Errorf("failed to get garment image by id: %w", err)
	}

	return image, nil
}

func (r *GarmentImageRepository) ListByGarment(ctx context.Context, garmentID uuid.UUID) ([]model.GarmentImage, error) {
	query := `SELECT ` + garmentImageColumns + ` FROM garment_images
			  WHERE garment_id = $1 ORDER BY created_at`

	rows, err := getQuerier(ctx, r.db).Query(ctx, query, garmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list garment images: %w", err)
	}
	defer rows.Close()

	var images []model.GarmentImage
	for rows.Next() {
		var image model.GarmentImage
		if err := rows.Scan(
			&image.ID, &image.URL, &image.FileName, &image.FileSize, &image.MimeType,
			&image.ObjectKey, &image.GarmentID, &image.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan garment image: %w", err)
		}
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read garment images: %w", err)
	}

	return images, nil
}

func (r *GarmentImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := getQuerier(ctx, r.db).Exec(ctx, `DELETE FROM garment_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete garment image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
