//go:build unit || e2e

package dbtest

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PoolLike is DBLike plus multi-row queries; *pgxpool.Pool satisfies it.
type PoolLike interface {
	DBLike
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
