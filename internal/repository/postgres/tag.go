package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harryneopotter/hanger-on-server/internal/model"
)

var _ model.TagStore = (*TagRepository)(nil)

type TagRepository struct {
	db *Connection
}

func NewTagRepository(db *Connection) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, tag model.Tag) (model.Tag, error) {
	query := `INSERT INTO tags (id, name, color, user_id, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, color, user_id, created_at`

	var saved model.Tag
	err := getQuerier(ctx, r.db).QueryRow(ctx, query,
		tag.ID, tag.Name, tag.Color, tag.UserID, tag.CreatedAt,
	).Scan(&saved.ID, &saved.Name, &saved.Color, &saved.UserID, &saved.CreatedAt)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return model.Tag{}, fmt.Errorf("tag %q: %w", tag.Name, mapped)
		}
		return model.Tag{}, fmt.Errorf("failed to create tag: %w", err)
	}

	return saved, nil
}

func (r *TagRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Tag, error) {
	query := `SELECT id, name, color, user_id, created_at FROM tags WHERE id = $1`

	var tag model.Tag
	err := getQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&tag.ID, &tag.Name, &tag.Color, &tag.UserID, &tag.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tag{}, model.ErrNotFound
		}
		return model.Tag{}, fmt.Errorf("failed to get tag by id: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) GetByName(ctx context.Context, userID uuid.UUID, name string) (model.Tag, error) {
	query := `SELECT id, name, color, user_id, created_at FROM tags
			  WHERE user_id = $1 AND name = $2`

	var tag model.Tag
	err := getQuerier(ctx, r.db).QueryRow(ctx, query, userID, name).Scan(
		&tag.ID, &tag.Name, &tag.Color, &tag.UserID, &tag.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tag{}, model.ErrNotFound
		}
		return model.Tag{}, fmt.Errorf("failed to get tag by name: %w", err)
	}

	return tag, nil
}

func (r *TagRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.TagWithCount, error) {
	query := `SELECT t.id, t.name, t.color, t.user_id, t.created_at, COUNT(gt.garment_id)
			  FROM tags t
			  LEFT JOIN garment_tags gt ON gt.tag_id = t.id
			  WHERE t.user_id = $1
			  GROUP BY t.id, t.name, t.color, t.user_id, t.created_at
			  ORDER BY t.name`

	rows, err := getQuerier(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []model.TagWithCount
	for rows.Next() {
		var t model.TagWithCount
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Color, &t.UserID, &t.CreatedAt, &t.GarmentCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return tags, nil
}

func (r *TagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := getQuerier(ctx, r.db).Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Attach inserts the association if absent. The ON CONFLICT clause makes
// concurrent attaches of the same pair safe, exactly one caller inserts.
func (r *TagRepository) Attach(ctx context.Context, garmentID, tagID uuid.UUID) (bool, error) {
	tag, err := getQuerier(ctx, r.db).Exec(ctx,
		`INSERT INTO garment_tags (garment_id, tag_id) VALUES ($1, $2)
		 ON CONFLICT (garment_id, tag_id) DO NOTHING`, garmentID, tagID)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return false, fmt.Errorf("attach tag: %w", mapped)
		}
		return false, fmt.Errorf("failed to attach tag: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Detach removes the association. An absent pair is not an error.
func (r *TagRepository) Detach(ctx context.Context, garmentID, tagID uuid.UUID) error {
	_, err := getQuerier(ctx, r.db).Exec(ctx,
		`DELETE FROM garment_tags WHERE garment_id = $1 AND tag_id = $2`, garmentID, tagID)
	if err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}
	return nil
}

func (r *TagRepository) ListByGarment(ctx context.Context, garmentID uuid.UUID) ([]model.Tag, error) {
	query := `SELECT t.id, t.name, t.color, t.user_id, t.created_at
			  FROM garment_tags gt
			  JOIN tags t ON t.id = gt.tag_id
			  WHERE gt.garment_id = $1 ORDER BY t.name`

	rows, err := getQuerier(ctx, r.db).Query(ctx, query, garmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags by garment: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return tags, nil
}
