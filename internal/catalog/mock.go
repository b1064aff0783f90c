package catalog

import (
	"context"
	"errors"
	"sync"
)

// ErrMockNotImplemented is returned when a MockStore method lacks an override.
var ErrMockNotImplemented = errors.New("catalog.MockStore: method not implemented")

// MockStore is a test double for the Store interface.
type MockStore struct {
	SearchFn func(context.Context, string, int) (Page, error)
	GetFn    func(context.Context, string) (Item, error)

	mu              sync.Mutex
	SearchCallCount int
	GetCallCount    int
	SearchQueries   []string
	GetIDs          []string
}

// NewMockStore returns an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Search invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockStore) Search(ctx context.Context, query string, limit int) (Page, error) {
	m.mu.Lock()
	m.SearchCallCount++
	m.SearchQueries = append(m.SearchQueries, query)
	m.mu.Unlock()

	if m.SearchFn == nil {
		return Page{}, ErrMockNotImplemented
	}
	return m.SearchFn(ctx, query, limit)
}

// Get invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockStore) Get(ctx context.Context, id string) (Item, error) {
	m.mu.Lock()
	m.GetCallCount++
	m.GetIDs = append(m.GetIDs, id)
	m.mu.Unlock()

	if m.GetFn == nil {
		return Item{}, ErrMockNotImplemented
	}
	return m.GetFn(ctx, id)
}

// Calls returns the search and get call counts.
func (m *MockStore) Calls() (search, get int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.SearchCallCount, m.GetCallCount
}
