// Package tx carries a *sql.Tx through the context so postgres stores join
// a transaction opened by the caller.
package tx

import (
	"context"
	"database/sql"
)

type txKey struct{}

// WithTx returns ctx unchanged for a nil tx.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, tx)
}

func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey{}).(*sql.Tx)
	return tx, ok
}
