package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "seekbox/internal/errors"
)

func TestOpen(t *testing.T) {
	t.Run("DefaultsToMemory", func(t *testing.T) {
		store, closeFn, err := Open(OpenOptions{Items: sampleItems()})
		require.NoError(t, err)
		require.NotNil(t, closeFn)
		defer func() { _ = closeFn() }()

		_, ok := store.(*MemoryStore)
		assert.True(t, ok, "expected *MemoryStore, got %T", store)
	})

	t.Run("IndexFromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "items.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"id":"kiwi","name":"Kiwi"}]`), 0o600))

		store, closeFn, err := Open(OpenOptions{Kind: "Index", Path: path})
		require.NoError(t, err)
		defer func() { _ = closeFn() }()

		item, err := store.Get(context.Background(), "kiwi")
		require.NoError(t, err)
		assert.Equal(t, "Kiwi", item.Name)
	})

	t.Run("SQLite", func(t *testing.T) {
		path := testSQLiteDB(t, "items", sampleItems())

		store, _, err := Open(OpenOptions{Kind: KindSQLite, Path: path})
		require.NoError(t, err)

		page, err := store.Search(context.Background(), "ban", 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"banana"}, page.IDs())
	})

	t.Run("SQLiteWithoutPath", func(t *testing.T) {
		_, _, err := Open(OpenOptions{Kind: KindSQLite})
		assert.True(t, appErrors.IsCode(err, appErrors.CodeConfigurationError))
	})

	t.Run("UnknownKind", func(t *testing.T) {
		_, closeFn, err := Open(OpenOptions{Kind: "redis"})
		assert.True(t, appErrors.IsCode(err, appErrors.CodeConfigurationError))
		assert.NotNil(t, closeFn)
	})
}

func TestMockStore(t *testing.T) {
	m := NewMockStore()

	_, err := m.Search(context.Background(), "a", 1)
	assert.ErrorIs(t, err, ErrMockNotImplemented)

	m.GetFn = func(_ context.Context, id string) (Item, error) {
		return Item{ID: id}, nil
	}
	item, err := m.Get(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "x", item.ID)

	searches, gets := m.Calls()
	assert.Equal(t, 1, searches)
	assert.Equal(t, 1, gets)
	assert.Equal(t, []string{"a"}, m.SearchQueries)
}
