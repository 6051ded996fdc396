package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/carneiro-api/internal/domain"
)

// storageErr envuelve err con domain.ErrStorage, agregando el SQLSTATE cuando es un error de PostgreSQL.
func storageErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %s (sqlstate %s): %w", domain.ErrStorage, op, pgErr.Code, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}
