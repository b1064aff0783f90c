// Package lookup adapts catalog stores to the picker: it turns a
// catalog.Store into the ComboBox's asynchronous Source and InfoLoader, and
// provides store wrappers for caching, fan-out and simulated latency plus
// the recovery rules applied to unmatched text.
package lookup

import (
	"context"
	"fmt"

	"seekbox/internal/catalog"
	"seekbox/internal/debug"
	appErrors "seekbox/internal/errors"
	"seekbox/internal/ui"
)

var lookupLog = debug.Scope("lookup")

// DefaultLimit bounds a page when no limit is configured.
const DefaultLimit = 50

// Source returns a picker Source over store. Values are item IDs and infos
// are the items themselves.
func Source(store catalog.Store, limit int) ui.Source[string, catalog.Item] {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return func(ctx context.Context, text string) (ui.SearchResult[string, catalog.Item], error) {
		page, err := store.Search(ctx, text, limit)
		if err != nil {
			lookupLog.Logf("search %q failed: %v", text, err)
			return ui.SearchResult[string, catalog.Item]{}, appErrors.New(appErrors.CodeLookupFailed, fmt.Sprintf("search %q", text), err)
		}
		return resultOf(page), nil
	}
}

func resultOf(page catalog.Page) ui.SearchResult[string, catalog.Item] {
	result := ui.SearchResult[string, catalog.Item]{
		Values: make([]string, len(page.Items)),
		Infos:  make([]catalog.Item, len(page.Items)),
		Total:  page.Total,
	}
	for i, item := range page.Items {
		result.Values[i] = item.ID
		result.Infos[i] = item
	}
	return result
}

// Label renders an item by name, or by ID while the item is unknown.
func Label(id string, item catalog.Item, ok bool) string {
	if ok && item.Name != "" {
		return item.Name
	}
	return id
}
