package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_FreshDatabase(t *testing.T) {
	ctx := context.Background()
	tmpFile := filepath.Join(t.TempDir(), "test.db")

	store, err := New(ctx, tmpFile)
	require.NoError(t, err)
	defer store.Close()

	err = store.RunMigrations(ctx)
	require.NoError(t, err)

	version, dirty, err := store.MigrationVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
	assert.False(t, dirty)

	t.Run("running again is a no-op", func(t *testing.T) {
		err = store.RunMigrations(ctx)
		require.NoError(t, err)

		version, _, err := store.MigrationVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint(2), version)
	})
}

func TestMigrations_NeverMigrated(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer store.Close()

	_, _, err = store.MigrationVersion(ctx)
	assert.Error(t, err, "the migrations table does not exist yet")
}

func TestMigrations_ExistingDatabase(t *testing.T) {
	ctx := context.Background()
	tmpFile := filepath.Join(t.TempDir(), "existing.db")

	store, err := New(ctx, tmpFile)
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations(ctx))

	_, err = store.AddFault(ctx, newFault(7, "sonarr is down"))
	require.NoError(t, err)
	require.NoError(t, store.UpsertUserProfile(ctx, model.UserProfile{UserID: "u1", RootPath: 2}))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, tmpFile)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.RunMigrations(ctx))

	entry, err := reopened.FindFaultByRequestID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "sonarr is down", entry.Error)

	profile, err := reopened.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), profile.RootPath)
}
