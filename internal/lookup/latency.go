package lookup

import (
	"context"
	"math/rand/v2"
	"time"

	"seekbox/internal/catalog"
)

// SlowStore delays every call by a random duration up to maxDelay, so responses
// for consecutive keystrokes can complete out of order.
type SlowStore struct {
	store    catalog.Store
	maxDelay time.Duration
	rand     func(n int64) int64
}

// WithLatency wraps store. A non-positive maxDelay returns store unchanged.
func WithLatency(store catalog.Store, maxDelay time.Duration) catalog.Store {
	if maxDelay <= 0 {
		return store
	}
	return &SlowStore{store: store, maxDelay: maxDelay, rand: rand.Int64N}
}

func (s *SlowStore) wait(ctx context.Context) error {
	d := time.Duration(s.rand(int64(s.maxDelay) + 1))
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *SlowStore) Search(ctx context.Context, query string, limit int) (catalog.Page, error) {
	if err := s.wait(ctx); err != nil {
		lookupLog.Logf("search %q gave up waiting: %v", query, err)
		return catalog.Page{}, err
	}
	return s.store.Search(ctx, query, limit)
}

func (s *SlowStore) Get(ctx context.Context, id string) (catalog.Item, error) {
	if err := s.wait(ctx); err != nil {
		return catalog.Item{}, err
	}
	return s.store.Get(ctx, id)
}
