package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harryneopotter/hanger-on-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (id, name, email, email_verified, image, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, name, email, email_verified, image, created_at, updated_at`

	var saved model.User
	err := getQuerier(ctx, r.db).QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.EmailVerified, user.Image,
		user.CreatedAt, user.UpdatedAt,
	).Scan(
		&saved.ID, &saved.Name, &saved.Email, &saved.EmailVerified, &saved.Image,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return model.User{}, fmt.Errorf("user with email %s: %w", user.Email, mapped)
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	var user model.User
	query := `SELECT id, name, email, email_verified, image, created_at, updated_at
			  FROM users WHERE id = $1`

	err := getQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.EmailVerified, &user.Image,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT id, name, email, email_verified, image, created_at, updated_at
			  FROM users WHERE email = $1`

	err := getQuerier(ctx, r.db).QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.EmailVerified, &user.Image,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	query := `UPDATE users SET name = $2, email = $3, email_verified = $4, image = $5, updated_at = NOW()
			  WHERE id = $1
			  RETURNING id, name, email, email_verified, image, created_at, updated_at`

	var saved model.User
	err := getQuerier(ctx, r.db).QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.EmailVerified, user.Image,
	).Scan(
		&saved.ID, &saved.Name, &saved.Email, &saved.EmailVerified, &saved.Image,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		if mapped := constraintError(err); mapped != nil {
			return model.User{}, fmt.Errorf("user with email %s: %w", user.Email, mapped)
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

// Delete removes a user. Accounts, sessions, garments and tags go with it
// through the database cascade.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := getQuerier(ctx, r.db).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
