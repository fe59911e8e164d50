package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/model"
	"github.com/kasuboski/dvrdispatch/pkg/storage/sqlite/schema/gen/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFault(requestID int64, msg string) storage.FaultEntry {
	payload := `{"id":1}`
	return storage.FaultEntry{
		FaultQueue: model.FaultQueue{
			RequestID: requestID,
			Type:      storage.RequestTypeTV,
			Error:     msg,
			Payload:   &payload,
		},
	}
}

func TestFaultStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("add and find", func(t *testing.T) {
		store := initSqlite(t, ctx)

		id, err := store.AddFault(ctx, newFault(42, "boom"))
		require.NoError(t, err)
		assert.NotZero(t, id)

		entry, err := store.FindFaultByRequestID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, int32(id), entry.ID)
		assert.Equal(t, int64(42), entry.RequestID)
		assert.Equal(t, "tv", entry.Type)
		assert.Equal(t, "boom", entry.Error)
		assert.Equal(t, int32(0), entry.RetryCount)
		assert.Equal(t, string(storage.FaultStateFailed), entry.State)
		assert.WithinDuration(t, time.Now(), entry.Dts, time.Minute)
		assert.Nil(t, entry.Completed)
		require.NotNil(t, entry.Payload)
		assert.Equal(t, `{"id":1}`, *entry.Payload)
	})

	t.Run("find missing", func(t *testing.T) {
		store := initSqlite(t, ctx)

		entry, err := store.FindFaultByRequestID(ctx, 7)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		assert.Nil(t, entry)
	})

	t.Run("duplicate request id rejected", func(t *testing.T) {
		store := initSqlite(t, ctx)

		_, err := store.AddFault(ctx, newFault(1, "one"))
		require.NoError(t, err)

		_, err = store.AddFault(ctx, newFault(1, "two"))
		assert.Error(t, err)
	})

	t.Run("save updates mutable fields", func(t *testing.T) {
		store := initSqlite(t, ctx)

		_, err := store.AddFault(ctx, newFault(5, "first"))
		require.NoError(t, err)

		entry, err := store.FindFaultByRequestID(ctx, 5)
		require.NoError(t, err)

		entry.RetryCount++
		entry.Error = "second"
		require.NoError(t, entry.Transition(storage.FaultStateCompleted))
		now := time.Now().UTC()
		entry.Completed = &now

		err = store.SaveFault(ctx, *entry)
		require.NoError(t, err)

		updated, err := store.FindFaultByRequestID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int32(1), updated.RetryCount)
		assert.Equal(t, "second", updated.Error)
		assert.Equal(t, string(storage.FaultStateCompleted), updated.State)
		require.NotNil(t, updated.Completed)
		assert.WithinDuration(t, now, *updated.Completed, time.Second)
	})

	t.Run("save missing entry", func(t *testing.T) {
		store := initSqlite(t, ctx)

		entry := newFault(9, "x")
		entry.ID = 100
		err := store.SaveFault(ctx, entry)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("list filters by state", func(t *testing.T) {
		store := initSqlite(t, ctx)

		for i := int64(1); i <= 3; i++ {
			_, err := store.AddFault(ctx, newFault(i, "err"))
			require.NoError(t, err)
		}

		entry, err := store.FindFaultByRequestID(ctx, 2)
		require.NoError(t, err)
		require.NoError(t, entry.Transition(storage.FaultStateCompleted))
		require.NoError(t, store.SaveFault(ctx, *entry))

		all, err := store.ListFaults(ctx, 0, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		failed, err := store.ListFaults(ctx, 0, 0, table.FaultQueue.State.EQ(sqlite.String(string(storage.FaultStateFailed))))
		require.NoError(t, err)
		require.Len(t, failed, 2)
		assert.Equal(t, int64(1), failed[0].RequestID)
		assert.Equal(t, int64(3), failed[1].RequestID)

		filtered, err := store.ListFaults(ctx, 0, 0,
			table.FaultQueue.State.EQ(sqlite.String(string(storage.FaultStateFailed))),
			table.FaultQueue.RequestID.GT(sqlite.Int64(1)),
		)
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, int64(3), filtered[0].RequestID)
	})

	t.Run("page and count", func(t *testing.T) {
		store := initSqlite(t, ctx)

		for i := int64(1); i <= 5; i++ {
			_, err := store.AddFault(ctx, newFault(i, "err"))
			require.NoError(t, err)
		}

		page, err := store.ListFaults(ctx, 2, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, int64(3), page[0].RequestID)
		assert.Equal(t, int64(4), page[1].RequestID)

		count, err := store.CountFaults(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		count, err = store.CountFaults(ctx, table.FaultQueue.RequestID.GT(sqlite.Int64(3)))
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestFaultEntry_Transition(t *testing.T) {
	entry := storage.FaultEntry{}

	require.NoError(t, entry.Transition(storage.FaultStateFailed))
	assert.Equal(t, "failed", entry.State)

	require.NoError(t, entry.Transition(storage.FaultStateCompleted))
	assert.Equal(t, "completed", entry.State)

	require.NoError(t, entry.Transition(storage.FaultStateFailed))
	assert.Equal(t, "failed", entry.State)

	err := entry.Transition(storage.FaultStateNew)
	assert.Error(t, err)
	assert.Equal(t, "failed", entry.State)
}
