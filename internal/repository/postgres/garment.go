package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harryneopotter/hanger-on-server/internal/model"
)

var _ model.GarmentStore = (*GarmentRepository)(nil)

type GarmentRepository struct {
	db *Connection
}

func NewGarmentRepository(db *Connection) *GarmentRepository {
	return &GarmentRepository{db: db}
}

const garmentColumns = `id, name, category, material, color, size, brand, purchase_date,
		cost, care_instructions, status, notes, user_id, created_at, updated_at`

func scanGarment(row pgx.Row, g *model.Garment) error {
	return row.Scan(
		&g.ID, &g.Name, &g.Category, &g.Material, &g.Color, &g.Size, &g.Brand,
		&g.PurchaseDate, &g.Cost, &g.CareInstructions, &g.Status, &g.Notes,
		&g.UserID, &g.CreatedAt, &g.UpdatedAt,
	)
}

func (r *GarmentRepository) Create(ctx context.Context, garment model.Garment) (model.Garment, error) {
	query := `INSERT INTO garments (` + garmentColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			  RETURNING ` + garmentColumns

	var saved model.Garment
	err := scanGarment(getQuerier(ctx, r.db).QueryRow(ctx, query,
		garment.ID, garment.Name, garment.Category, garment.Material, garment.Color,
		garment.Size, garment.Brand, garment.PurchaseDate, garment.Cost,
		garment.CareInstructions, garment.Status, garment.Notes, garment.UserID,
		garment.CreatedAt, garment.UpdatedAt,
	), &saved)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return model.Garment{}, fmt.Errorf("garment: %w", mapped)
		}
		return model.Garment{}, fmt.Errorf("failed to create garment: %w", err)
	}

	return saved, nil
}

func (r *GarmentRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Garment, error) {
	query := `SELECT ` + garmentColumns + ` FROM garments WHERE id = $1`

	var garment model.Garment
	err := scanGarment(getQuerier(ctx, r.db).QueryRow(ctx, query, id), &garment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Garment{}, model.ErrNotFound
		}
		return model.Garment{}, fmt.Errorf("failed to get garment by id: %w", err)
	}

	if err := r.loadRelations(ctx, []*model.Garment{&garment}); err != nil {
		return model.Garment{}, err
	}

	return garment, nil
}

func (r *GarmentRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter model.GarmentFilter) ([]model.Garment, error) {
	query := `SELECT ` + garmentColumns + ` FROM garments WHERE user_id = $1`
	args := []any{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := getQuerier(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list garments: %w", err)
	}
	defer rows.Close()

	var garments []model.Garment
	for rows.Next() {
		var g model.Garment
		if err := scanGarment(rows, &g); err != nil {
			return nil, fmt.Errorf("failed to scan garment: %w", err)
		}
		garments = append(garments, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read garments: %w", err)
	}

	refs := make([]*model.Garment, len(garments))
	for i := range garments {
		refs[i] = &garments[i]
	}
	if err := r.loadRelations(ctx, refs); err != nil {
		return nil, err
	}

	return garments, nil
}

// loadRelations batch-loads images and tags for the given garments, two
// queries regardless of garment count.
func (r *GarmentRepository) loadRelations(ctx context.Context, garments []*model.Garment) error {
	if len(garments) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(garments))
	byID := make(map[uuid.UUID]*model.Garment, len(garments))
	for i, g := range garments {
		ids[i] = g.ID
		byID[g.ID] = g
	}

	q := getQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, url, file_name, file_size, mime_type, object_key, garment_id, created_at
		 FROM garment_images WHERE garment_id = ANY($1) ORDER BY created_at`, ids)
	if err != nil {
		return fmt.Errorf("failed to load garment images: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var img model.GarmentImage
		if err := rows.Scan(
			&img.ID, &img.URL, &img.FileName, &img.FileSize, &img.MimeType,
			&img.ObjectKey, &img.GarmentID, &img.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan garment image: %w", err)
		}
		if g, ok := byID[img.GarmentID]; ok {
			g.Images = append(g.Images, img)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read garment images: %w", err)
	}

	tagRows, err := q.Query(ctx,
		`SELECT gt.garment_id, t.id, t.name, t.color, t.user_id, t.created_at
		 FROM garment_tags gt
		 JOIN tags t ON t.id = gt.tag_id
		 WHERE gt.garment_id = ANY($1) ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to load garment tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var garmentID uuid.UUID
		var tag model.Tag
		if err := tagRows.Scan(
			&garmentID, &tag.ID, &tag.Name, &tag.Color, &tag.UserID, &tag.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan garment tag: %w", err)
		}
		if g, ok := byID[garmentID]; ok {
			g.Tags = append(g.Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("failed to read garment tags: %w", err)
	}

	return nil
}

func (r *GarmentRepository) Update(ctx context.Context, garment model.Garment) (model.Garment, error) {
	query := `UPDATE garments SET
				name = $2, category = $3, material = $4, color = $5, size = $6, brand = $7,
				purchase_date = $8, cost = $9, care_instructions = $10, status = $11,
				notes = $12, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + garmentColumns

	var saved model.Garment
	err := scanGarment(getQuerier(ctx, r.db).QueryRow(ctx, query,
		garment.ID, garment.Name, garment.Category, garment.Material, garment.Color,
		garment.Size, garment.Brand, garment.PurchaseDate, garment.Cost,
		garment.CareInstructions, garment.Status, garment.Notes,
	), &saved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Garment{}, model.ErrNotFound
		}
		return model.Garment{}, fmt.Errorf("failed to update garment: %w", err)
	}

	return saved, nil
}

// UpdateStatus overwrites the status unconditionally, any value of the enum
// may follow any other.
func (r *GarmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.GarmentStatus) error {
	tag, err := getQuerier(ctx, r.db).Exec(ctx,
		`UPDATE garments SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update garment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete removes a garment. Its images and tag associations go with it
// through the database cascade.
func (r *GarmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := getQuerier(ctx, r.db).Exec(ctx, `DELETE FROM garments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete garment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
