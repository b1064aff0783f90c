package catalog

import (
	"fmt"
	"strings"

	appErrors "seekbox/internal/errors"
)

// Store kinds accepted by Open.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
	KindIndex  = "index"
)

// OpenOptions selects and configures a store.
type OpenOptions struct {
	Kind  string // memory, sqlite or index; empty means memory
	Path  string // JSON items file (memory, index) or database (sqlite)
	Table string // sqlite only
	Items []Item // used by memory and index when Path is empty
}

// Open builds the configured store. The returned close function releases
// any resources the store holds and is never nil.
func Open(opts OpenOptions) (Store, func() error, error) {
	noop := func() error { return nil }

	kind := strings.ToLower(strings.TrimSpace(opts.Kind))
	if kind == "" {
		kind = KindMemory
	}

	switch kind {
	case KindSQLite:
		store, err := NewSQLiteStore(opts.Path, opts.Table)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case KindMemory, KindIndex:
		items := opts.Items
		if opts.Path != "" {
			loaded, err := LoadItems(opts.Path)
			if err != nil {
				return nil, noop, err
			}
			items = loaded
		}
		if kind == KindMemory {
			return NewMemoryStore(items), noop, nil
		}
		store, err := NewIndexStore(items)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	}

	return nil, noop, appErrors.New(appErrors.CodeConfigurationError,
		fmt.Sprintf("unknown source kind %q (must be memory, sqlite or index)", opts.Kind), nil)
}
