package lookup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"seekbox/internal/catalog"
	appErrors "seekbox/internal/errors"
)

// MergedStore searches several stores at once and concatenates their pages
// in store order. An ID already contributed by an earlier store is skipped.
type MergedStore struct {
	stores []catalog.Store
}

// Merge combines stores into one.
func Merge(stores ...catalog.Store) *MergedStore {
	return &MergedStore{stores: stores}
}

// Search fails if any store fails. The limit applies to each store and to
// the merged page.
func (m *MergedStore) Search(ctx context.Context, query string, limit int) (catalog.Page, error) {
	pages := make([]catalog.Page, len(m.stores))
	g, gctx := errgroup.WithContext(ctx)
	for i, store := range m.stores {
		g.Go(func() error {
			page, err := store.Search(gctx, query, limit)
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return catalog.Page{}, err
	}

	seen := make(map[string]struct{})
	var merged catalog.Page
	for _, page := range pages {
		merged.Total += page.Total
		for _, item := range page.Items {
			if _, dup := seen[item.ID]; dup {
				merged.Total--
				continue
			}
			seen[item.ID] = struct{}{}
			merged.Items = append(merged.Items, item)
		}
	}
	if limit > 0 && len(merged.Items) > limit {
		merged.Items = merged.Items[:limit]
	}
	if merged.Total < len(merged.Items) {
		merged.Total = len(merged.Items)
	}
	return merged, nil
}

// Get asks each store in order and returns the first hit. Not-found answers
// move on to the next store; any other error stops the walk.
func (m *MergedStore) Get(ctx context.Context, id string) (catalog.Item, error) {
	for _, store := range m.stores {
		item, err := store.Get(ctx, id)
		if err == nil {
			return item, nil
		}
		if !appErrors.IsCode(err, appErrors.CodeNotFound) {
			return catalog.Item{}, err
		}
	}
	return catalog.Item{}, appErrors.New(appErrors.CodeNotFound, "item "+id+" not found in any store", catalog.ErrNotFound)
}
