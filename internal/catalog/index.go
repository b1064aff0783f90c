package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	appErrors "seekbox/internal/errors"
)

// Field boosts for index queries. Name matches outrank description matches.
const (
	nameBoost   = 3
	prefixBoost = 2
)

// IndexStore keeps items in an in-memory full-text index. Queries match
// name terms, name prefixes and description terms; results are ordered by
// score, then ID. An empty query lists items by ID.
type IndexStore struct {
	mu    sync.RWMutex
	index bleve.Index
	items map[string]Item
}

// NewIndexStore indexes items in memory. Later duplicates of an ID replace
// earlier ones.
func NewIndexStore(items []Item) (*IndexStore, error) {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreUnavailable, "create index", err)
	}
	s := &IndexStore{index: idx, items: make(map[string]Item, len(items))}

	batch := idx.NewBatch()
	for _, item := range items {
		doc := map[string]interface{}{
			"name":        item.Name,
			"description": item.Description,
		}
		if err := batch.Index(item.ID, doc); err != nil {
			_ = idx.Close()
			return nil, appErrors.New(appErrors.CodeStoreUnavailable, "index item "+item.ID, err)
		}
		s.items[item.ID] = item
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, appErrors.New(appErrors.CodeStoreUnavailable, "index batch", err)
	}
	storeLog.Logf("indexed %d items", len(s.items))
	return s, nil
}

// Close releases the index.
func (s *IndexStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Close()
}

func buildIndexQuery(text string) query.Query {
	text = strings.TrimSpace(text)
	if text == "" {
		return bleve.NewMatchAllQuery()
	}

	name := bleve.NewMatchQuery(text)
	name.SetField("name")
	name.SetBoost(nameBoost)

	prefix := bleve.NewPrefixQuery(strings.ToLower(text))
	prefix.SetField("name")
	prefix.SetBoost(prefixBoost)

	desc := bleve.NewMatchQuery(text)
	desc.SetField("description")

	return bleve.NewDisjunctionQuery(name, prefix, desc)
}

func (s *IndexStore) Search(ctx context.Context, text string, limit int) (Page, error) {
	if err := validateQuery(text); err != nil {
		return Page{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	size := limit
	if size <= 0 {
		size = len(s.items)
	}
	if size == 0 {
		return Page{}, nil
	}

	req := bleve.NewSearchRequestOptions(buildIndexQuery(text), size, 0, false)
	req.SortBy([]string{"-_score", "_id"})
	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return Page{}, classifyQueryError("index search", err)
	}

	page := Page{Total: int(res.Total)}
	for _, hit := range res.Hits {
		if item, ok := s.items[hit.ID]; ok {
			page.Items = append(page.Items, item)
		}
	}
	return page, nil
}

func (s *IndexStore) Get(ctx context.Context, id string) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, classifyQueryError("index get", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return Item{}, notFound(id)
	}
	return item, nil
}
