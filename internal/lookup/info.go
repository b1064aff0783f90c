package lookup

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"seekbox/internal/catalog"
	appErrors "seekbox/internal/errors"
	"seekbox/internal/ui"
)

// sharedLoadTimeout bounds a store call shared by several loads. No single
// caller's context governs it.
const sharedLoadTimeout = 30 * time.Second

// InfoLoader resolves committed IDs to items. Concurrent loads of the same
// ID share one store call.
type InfoLoader struct {
	store   catalog.Store
	group   singleflight.Group
	timeout time.Duration
}

// NewInfoLoader creates an InfoLoader over store.
func NewInfoLoader(store catalog.Store) *InfoLoader {
	return &InfoLoader{store: store, timeout: sharedLoadTimeout}
}

// Load fetches the item for id. A caller whose ctx ends gives up on its own;
// the shared call keeps running for the others.
func (l *InfoLoader) Load(ctx context.Context, id string) (catalog.Item, error) {
	ch := l.group.DoChan(id, func() (interface{}, error) {
		flightCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
		defer cancel()
		return l.store.Get(flightCtx, id)
	})

	select {
	case <-ctx.Done():
		return catalog.Item{}, appErrors.New(appErrors.CodeInfoFailed, fmt.Sprintf("load %q", id), ctx.Err())
	case res := <-ch:
		if res.Shared {
			lookupLog.Logf("info %q coalesced", id)
		}
		if res.Err != nil {
			return catalog.Item{}, appErrors.New(appErrors.CodeInfoFailed, fmt.Sprintf("load %q", id), res.Err)
		}
		return res.Val.(catalog.Item), nil
	}
}

// Func returns Load as a picker InfoLoader.
func (l *InfoLoader) Func() ui.InfoLoader[string, catalog.Item] {
	return l.Load
}
