package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"

	appErrors "seekbox/internal/errors"
)

// MemoryStore keeps items in insertion order and ranks matches with fuzzy
// subsequence scoring on the lowercased name.
type MemoryStore struct {
	items []Item
	names []string
	byID  map[string]int
}

// NewMemoryStore builds a store from items. Later duplicates of an ID are
// skipped.
func NewMemoryStore(items []Item) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]int, len(items))}
	for _, item := range items {
		if _, dup := s.byID[item.ID]; dup {
			continue
		}
		s.byID[item.ID] = len(s.items)
		s.items = append(s.items, item)
		s.names = append(s.names, strings.ToLower(item.Name))
	}
	return s
}

// Len returns the number of items.
func (s *MemoryStore) Len() int {
	return len(s.items)
}

// Items returns a copy of every item in insertion order.
func (s *MemoryStore) Items() []Item {
	return append([]Item(nil), s.items...)
}

// Search ranks items whose name contains the query's characters in order.
func (s *MemoryStore) Search(ctx context.Context, query string, limit int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, classifyQueryError("memory search", err)
	}
	if err := validateQuery(query); err != nil {
		return Page{}, err
	}
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return pageOf(s.items, limit), nil
	}

	matches := fuzzy.Find(query, s.names)
	ranked := make([]Item, 0, len(matches))
	for _, match := range matches {
		if match.Index >= 0 && match.Index < len(s.items) {
			ranked = append(ranked, s.items[match.Index])
		}
	}
	return pageOf(ranked, limit), nil
}

// Get returns the item with the given ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, classifyQueryError("memory get", err)
	}
	i, ok := s.byID[id]
	if !ok {
		return Item{}, notFound(id)
	}
	return s.items[i], nil
}

// LoadItems reads a JSON array of items from path.
func LoadItems(path string) ([]Item, error) {
	//nolint:gosec // G304: path comes from the user's own config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreUnavailable, fmt.Sprintf("read catalog %s", path), err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("parse catalog %s", path), err)
	}
	for i, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("catalog %s: item %d has no id", path, i), nil)
		}
		if item.Name == "" {
			items[i].Name = item.ID
		}
	}
	storeLog.Logf("loaded %d items from %s", len(items), path)
	return items, nil
}
