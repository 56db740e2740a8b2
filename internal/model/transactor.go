package model

import "context"

// Transactor runs fn atomically. Either every store call made through the
// returned context commits, or none do.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
