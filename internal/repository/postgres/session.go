package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harryneopotter/hanger-on-server/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) (model.Session, error) {
	query := `INSERT INTO sessions (id, session_token, user_id, expires)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, session_token, user_id, expires`

	var saved model.Session
	err := getQuerier(ctx, r.db).QueryRow(ctx, query,
		session.ID, session.SessionToken, session.UserID, session.Expires,
	).Scan(&saved.ID, &saved.SessionToken, &saved.UserID, &saved.Expires)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return model.Session{}, fmt.Errorf("session: %w", mapped)
		}
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return saved, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	query := `SELECT id, session_token, user_id, expires FROM sessions WHERE id = $1`

	var session model.Session
	err := getQuerier(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&session.ID, &session.SessionToken, &session.UserID, &session.Expires,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by id: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) GetByToken(ctx context.Context, sessionToken string) (model.Session, error) {
	query := `SELECT id, session_token, user_id, expires FROM sessions WHERE session_token = $1`

	var session model.Session
	err := getQuerier(ctx, r.db).QueryRow(ctx, query, sessionToken).Scan(
		&session.ID, &session.SessionToken, &session.UserID, &session.Expires,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session by token: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) DeleteByToken(ctx context.Context, sessionToken string) error {
	tag, err := getQuerier(ctx, r.db).Exec(ctx,
		`DELETE FROM sessions WHERE session_token = $1`, sessionToken)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := getQuerier(ctx, r.db).Exec(ctx,
		`DELETE FROM sessions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete sessions by user id: %w", err)
	}
	return nil
}

// DeleteExpired removes sessions whose expiry is at or before now and
// returns how many were swept.
func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := getQuerier(ctx, r.db).Exec(ctx,
		`DELETE FROM sessions WHERE expires <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
