package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrNestedTx is returned when RunInTx is called from inside a RunInTx
// callback.
var ErrNestedTx = errors.New("transaction already open in context")

// Beginner starts transactions. *pgxpool.Pool and pgxmock pools qualify.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager binds one READ COMMITTED transaction to a context for the
// length of a callback.
type TxManager struct {
	db Beginner
}

func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back otherwise. A panic in
// fn rolls back and propagates. fn's error is returned unchanged so callers
// can match it with errors.Is and errors.As.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return ErrNestedTx
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", MapError(err, "transaction", nil))
	}

	done := false
	defer func() {
		if !done {
			// Rollback on a cancelled ctx would fail before reaching the server.
			_ = tx.Rollback(context.WithoutCancel(ctx))
		}
	}()

	fnErr := fn(context.WithValue(ctx, txKey{}, tx))
	if fnErr != nil {
		done = true
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(fnErr, fmt.Errorf("rollback: %w", rbErr))
		}
		return fnErr
	}

	done = true
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", MapError(err, "transaction", nil))
	}
	return nil
}
