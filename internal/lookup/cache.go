package lookup

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"seekbox/internal/catalog"
	appErrors "seekbox/internal/errors"
)

// DefaultCacheSize is the number of pages and items kept when none is configured.
const DefaultCacheSize = 256

type pageKey struct {
	query string
	limit int
}

// CachedStore remembers recent pages and items of the wrapped store. Items
// seen in a page are cached too, so a commit's info is usually a cache hit.
// Errors are never cached.
type CachedStore struct {
	store catalog.Store
	pages *lru.Cache[pageKey, catalog.Page]
	items *lru.Cache[string, catalog.Item]
}

// NewCachedStore wraps store with caches of the given size.
func NewCachedStore(store catalog.Store, size int) (*CachedStore, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	pages, err := lru.New[pageKey, catalog.Page](size)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("page cache size %d", size), err)
	}
	items, err := lru.New[string, catalog.Item](size)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("item cache size %d", size), err)
	}
	return &CachedStore{store: store, pages: pages, items: items}, nil
}

func (c *CachedStore) Search(ctx context.Context, query string, limit int) (catalog.Page, error) {
	key := pageKey{query: query, limit: limit}
	if page, ok := c.pages.Get(key); ok {
		return page, nil
	}
	page, err := c.store.Search(ctx, query, limit)
	if err != nil {
		return catalog.Page{}, err
	}
	c.pages.Add(key, page)
	for _, item := range page.Items {
		c.items.Add(item.ID, item)
	}
	return page, nil
}

func (c *CachedStore) Get(ctx context.Context, id string) (catalog.Item, error) {
	if item, ok := c.items.Get(id); ok {
		return item, nil
	}
	item, err := c.store.Get(ctx, id)
	if err != nil {
		return catalog.Item{}, err
	}
	c.items.Add(id, item)
	return item, nil
}

// Purge drops every cached page and item.
func (c *CachedStore) Purge() {
	c.pages.Purge()
	c.items.Purge()
}
