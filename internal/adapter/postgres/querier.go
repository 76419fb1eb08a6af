package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is what repositories run SQL against: the pool, an open pgx.Tx,
// or a pgxmock pool in unit tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type txKey struct{}

func txFrom(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// InTx reports whether ctx belongs to a RunInTx callback. Row locks are only
// meaningful there.
func InTx(ctx context.Context) bool {
	_, ok := txFrom(ctx)
	return ok
}

// QuerierFromCtx prefers the transaction bound to ctx and falls back to db.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if tx, ok := txFrom(ctx); ok {
		return tx
	}
	return db
}
