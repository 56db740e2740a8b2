package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harryneopotter/hanger-on-server/internal/model"
)

var _ model.AccountStore = (*AccountRepository)(nil)

type AccountRepository struct {
	db *Connection
}

func NewAccountRepository(db *Connection) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, user_id, type, provider, provider_account_id,
		refresh_token, access_token, expires_at, token_type, scope, id_token, session_state`

func (r *AccountRepository) Create(ctx context.Context, account model.Account) (model.Account, error) {
	query := `INSERT INTO accounts (` + accountColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING ` + accountColumns

	var saved model.Account
	err := getQuerier(ctx, r.db).QueryRow(ctx, query,
		account.ID, account.UserID, account.Type, account.Provider, account.ProviderAccountID,
		account.RefreshToken, account.AccessToken, account.ExpiresAt, account.TokenType,
		account.Scope, account.IDToken, account.SessionState,
	).Scan(
		&saved.ID, &saved.UserID, &saved.Type, &saved.Provider, &saved.ProviderAccountID,
		&saved.RefreshToken, &saved.AccessToken, &saved.ExpiresAt, &saved.TokenType,
		&saved.Scope, &saved.IDToken, &saved.SessionState,
	)
	if err != nil {
		if mapped := constraintError(err); mapped != nil {
			return model.Account{}, fmt.Errorf("account %s/%s: %w",
				account.Provider, account.ProviderAccountID, mapped)
		}
		return model.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	return saved, nil
}

func (r *AccountRepository) GetByProvider(ctx context.Context, provider, providerAccountID string) (model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
			  WHERE provider = $1 AND provider_account_id = $2`

	var account model.Account
	err := getQuerier(ctx, r.db).QueryRow(ctx, query, provider, providerAccountID).Scan(
		&account.ID, &account.UserID, &account.Type, &account.Provider, &account.ProviderAccountID,
		&account.RefreshToken, &account.AccessToken, &account.ExpiresAt, &account.TokenType,
		&account.Scope, &account.IDToken, &account.SessionState,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Account{}, model.ErrNotFound
		}
		return model.Account{}, fmt.Errorf("failed to get account by provider: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 ORDER BY provider`

	rows, err := getQuerier(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts by user id: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var account model.Account
		if err := rows.Scan(
			&account.ID, &account.UserID, &account.Type, &account.Provider, &account.ProviderAccountID,
			&account.RefreshToken, &account.AccessToken, &account.ExpiresAt, &account.TokenType,
			&account.Scope, &account.IDToken, &account.SessionState,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := getQuerier(ctx, r.db).Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
