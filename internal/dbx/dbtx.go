// Package dbx holds the small database seam the user repositories are
// built against: DBTX, satisfied by both *sql.DB and *sql.Tx, and WithTx
// for service operations that need more than one statement to land
// atomically.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the query surface the user repositories need. Binding a
// repository to this interface instead of *sql.DB lets the same repository
// code run inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn with a transactional handle: commit on a nil return,
// rollback on error or panic. Panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
