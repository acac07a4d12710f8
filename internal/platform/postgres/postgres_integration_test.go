//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"afternote/pkg/testutil/containers"
)

func TestMigrateAndPool(t *testing.T) {
	ctx := context.Background()
	pg := containers.NewPostgresContainer(t)

	require.NoError(t, Migrate(ctx, pg.DB))
	require.NoError(t, Migrate(ctx, pg.DB), "migrations are idempotent")

	var n int
	require.NoError(t, pg.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM information_schema.tables WHERE table_name IN ('delivery_conditions','receivers','outbox')`,
	).Scan(&n))
	require.Equal(t, 3, n)

	pool, err := NewPool(ctx, pg.DSN)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, pool.Ping(ctx))
}
