package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/ordena-api/internal/domain"
)

// Querier es el subconjunto común de *pgxpool.Pool y pgx.Tx que usan los
// repositorios, para poder atarlos a una transacción en el TxRunner.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// translateErr mapea errores de PostgreSQL a errores de dominio:
// 23505 unique_violation -> ErrDuplicate, 23503 foreign_key_violation -> ErrInvalidReference.
// El resto se devuelve tal cual (la capa HTTP lo trata como fallo de persistencia).
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return domain.ErrDuplicate
		case "23503":
			return domain.ErrInvalidReference
		}
	}
	return err
}
