package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seekbox/internal/catalog"
)

func countingStore(items []catalog.Item) *catalog.MockStore {
	inner := catalog.NewMemoryStore(items)
	m := catalog.NewMockStore()
	m.SearchFn = inner.Search
	m.GetFn = inner.Get
	return m
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()

	t.Run("SearchHit", func(t *testing.T) {
		m := countingStore(fruit())
		c, err := NewCachedStore(m, 8)
		require.NoError(t, err)

		first, err := c.Search(ctx, "ap", 5)
		require.NoError(t, err)
		second, err := c.Search(ctx, "ap", 5)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("cached page differs (-first +second):\n%s", diff)
		}
		searches, _ := m.Calls()
		assert.Equal(t, 1, searches)
	})

	t.Run("LimitIsPartOfKey", func(t *testing.T) {
		m := countingStore(fruit())
		c, err := NewCachedStore(m, 8)
		require.NoError(t, err)

		_, _ = c.Search(ctx, "ap", 5)
		_, _ = c.Search(ctx, "ap", 1)

		searches, _ := m.Calls()
		assert.Equal(t, 2, searches)
	})

	t.Run("SearchFillsItemCache", func(t *testing.T) {
		m := countingStore(fruit())
		c, err := NewCachedStore(m, 8)
		require.NoError(t, err)

		_, err = c.Search(ctx, "ban", 5)
		require.NoError(t, err)
		item, err := c.Get(ctx, "banana")
		require.NoError(t, err)

		assert.Equal(t, "Banana", item.Name)
		_, gets := m.Calls()
		assert.Zero(t, gets)
	})

	t.Run("ErrorsNotCached", func(t *testing.T) {
		m := catalog.NewMockStore()
		m.SearchFn = func(context.Context, string, int) (catalog.Page, error) {
			return catalog.Page{}, errors.New("down")
		}
		c, err := NewCachedStore(m, 8)
		require.NoError(t, err)

		_, err = c.Search(ctx, "x", 1)
		assert.Error(t, err)
		_, err = c.Search(ctx, "x", 1)
		assert.Error(t, err)

		searches, _ := m.Calls()
		assert.Equal(t, 2, searches)
	})

	t.Run("Purge", func(t *testing.T) {
		m := countingStore(fruit())
		c, err := NewCachedStore(m, 0)
		require.NoError(t, err)

		_, _ = c.Get(ctx, "apple")
		c.Purge()
		_, _ = c.Get(ctx, "apple")

		_, gets := m.Calls()
		assert.Equal(t, 2, gets)
	})
}
