// Package catalog provides the candidate data behind the picker: the Item
// type, the Store interface, and stores backed by memory, SQLite and a
// full-text index.
package catalog

import (
	"context"

	"seekbox/internal/debug"
)

var storeLog = debug.Scope("catalog")

// Item is one selectable entry. ID is the committed value; Name is what the
// picker shows; Description is markdown shown in the preview pane.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Page is one bounded slice of search matches.
type Page struct {
	Items []Item
	Total int // Matches before the limit was applied
}

// IDs returns the item IDs in page order.
func (p Page) IDs() []string {
	ids := make([]string, len(p.Items))
	for i, item := range p.Items {
		ids[i] = item.ID
	}
	return ids
}

// Store looks items up by free text and by ID.
//
// Search returns at most limit items (limit <= 0 means no limit). An empty
// query lists items in the store's natural order.
type Store interface {
	Search(ctx context.Context, query string, limit int) (Page, error)
	Get(ctx context.Context, id string) (Item, error)
}

func pageOf(items []Item, limit int) Page {
	page := Page{Total: len(items)}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	page.Items = append([]Item(nil), items...)
	return page
}
