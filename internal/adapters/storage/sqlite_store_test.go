package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/tempo/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get(context.Background(), "timerState")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "weeklyGoalValue", "5"))
	value, ok, err := store.Get(ctx, "weeklyGoalValue")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5", value)

	// Overwrite keeps a single row
	require.NoError(t, store.Set(ctx, "weeklyGoalValue", "12"))
	value, _, err = store.Get(ctx, "weeklyGoalValue")
	require.NoError(t, err)
	assert.Equal(t, "12", value)

	var count int64
	require.NoError(t, store.db.Model(&KeyValueModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteStore_Remove(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "timerState", "{}"))
	require.NoError(t, store.Set(ctx, "lastSessionDate", "2026-10-14"))
	require.NoError(t, store.Set(ctx, "userProfile", `{"name":"a"}`))

	require.NoError(t, store.Remove(ctx, "timerState", "lastSessionDate", "notThere"))

	_, ok, err := store.Get(ctx, "timerState")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.Get(ctx, "lastSessionDate")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = store.Get(ctx, "userProfile")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.NoError(t, store.Remove(ctx))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewSQLiteStoreForPath(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "timerState", `{"totalSessionsCompleted":3}`))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStoreForPath(dir)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "timerState")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"totalSessionsCompleted":3}`, value)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)
		assert.Error(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}

func TestMapStorageError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{name: "nil", err: nil},
		{name: "disk full", err: sqlite3.Error{Code: sqlite3.ErrFull}, unavailable: true},
		{name: "read only", err: sqlite3.Error{Code: sqlite3.ErrReadonly}, unavailable: true},
		{name: "cannot open", err: sqlite3.Error{Code: sqlite3.ErrCantOpen}, unavailable: true},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}},
		{name: "plain", err: errors.New("plain")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStorageError(tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			assert.Equal(t, tt.unavailable, errors.Is(got, domain.ErrStorageUnavailable))
			assert.ErrorIs(t, got, tt.err)
		})
	}
}
