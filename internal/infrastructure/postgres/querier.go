package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrai a origem das queries: tanto *pgxpool.Pool quanto pgx.Tx
// satisfazem a interface. Os repositórios recebem um Querier, então o mesmo
// código roda solto (pool) ou dentro de uma transação (tx).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
