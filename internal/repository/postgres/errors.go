package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harryneopotter/hanger-on-server/internal/model"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintError maps PostgreSQL constraint violations to the model error
// taxonomy. Returns nil when err is not a constraint violation.
func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return model.ErrAlreadyExists
	case codeForeignKeyViolation:
		return model.ErrForeignKey
	}
	return nil
}
