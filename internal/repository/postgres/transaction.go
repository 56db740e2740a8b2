package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// txKey is used as a key for storing a transaction in context.
type txKey struct{}

// Transactor runs multi-statement operations inside a database transaction.
type Transactor struct {
	db *Connection
}

// NewTransactor creates a new Transactor instance.
func NewTransactor(db *Connection) *Transactor {
	return &Transactor{db: db}
}

// WithTransaction executes fn within a transaction. The transaction is
// carried in the context, repository methods pick it up through their
// querier. Nested calls reuse the outer transaction. The transaction is
// rolled back when fn returns an error or panics, committed otherwise.
func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx := getTx(ctx); tx != nil {
		return fn(ctx)
	}

	tx, err := t.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, txKey{}, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// getTx retrieves the transaction from context if one is active.
func getTx(ctx context.Context) pgx.Tx {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return nil
}

// getQuerier returns the active transaction if present, the pool otherwise.
func getQuerier(ctx context.Context, db *Connection) querier {
	if tx := getTx(ctx); tx != nil {
		return tx
	}
	return db.Pool
}

// querier is satisfied by both pgxpool.Pool and pgx.Tx so repository
// methods work inside and outside transactions.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
