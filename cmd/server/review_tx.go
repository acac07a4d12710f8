package main

import (
	"context"
	"database/sql"
	"sync"
	"time"

	dErrors "afternote/pkg/domain-errors"
	txcontext "afternote/pkg/platform/tx"
)

const defaultReviewTxTimeout = 5 * time.Second

// reviewPostgresTx runs an approval and any release it writes in one SQL
// transaction. Stores find the transaction through txcontext.
type reviewPostgresTx struct {
	db      *sql.DB
	timeout time.Duration
}

func newReviewPostgresTx(db *sql.DB) *reviewPostgresTx {
	return &reviewPostgresTx{db: db}
}

func (t *reviewPostgresTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultReviewTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(txcontext.WithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit()
}

// reviewMemoryTx serializes approvals against the in-memory stores. It cannot
// roll back a write that already happened.
type reviewMemoryTx struct {
	mu sync.Mutex
}

func newReviewMemoryTx() *reviewMemoryTx {
	return &reviewMemoryTx{}
}

func (t *reviewMemoryTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
