package sqlite

import (
	"context"
	"testing"

	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSqlite(t *testing.T, ctx context.Context) storage.Storage {
	t.Helper()

	store, err := New(ctx, ":memory:")
	require.NoError(t, err)

	err = store.RunMigrations(ctx)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestInit(t *testing.T) {
	store := initSqlite(t, context.Background())
	assert.NotNil(t, store)
}
