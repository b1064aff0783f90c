package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"

	"seekbox/internal/catalog"
	"seekbox/internal/config"
	"seekbox/internal/lookup"
	"seekbox/internal/ui"
)

type picker = ui.ComboBox[string, catalog.Item]

// sourcePaths splits the configured path list. Several paths are opened with
// the same kind and searched together.
func sourcePaths(raw string) []string {
	var paths []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// buildStore opens the configured stores and stacks the lookup wrappers on
// top: merge, simulated latency, cache. The raw store (without latency or
// cache) is returned too so startup reads stay fast.
func buildStore(runtime runtimeOptions) (served *lookup.CachedStore, raw catalog.Store, closeAll func() error, err error) {
	var closers []func() error
	closeAll = func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}

	paths := sourcePaths(runtime.sourcePath)
	if len(paths) == 0 {
		paths = []string{""}
	}

	stores := make([]catalog.Store, 0, len(paths))
	for _, path := range paths {
		opts := catalog.OpenOptions{
			Kind:  runtime.sourceKind,
			Path:  path,
			Table: runtime.sourceTable,
		}
		if path == "" {
			opts.Items = sampleItems()
		}
		store, closeFn, openErr := catalog.Open(opts)
		if openErr != nil {
			_ = closeAll()
			return nil, nil, func() error { return nil }, openErr
		}
		closers = append(closers, closeFn)
		stores = append(stores, store)
	}

	raw = stores[0]
	if len(stores) > 1 {
		raw = lookup.Merge(stores...)
	}

	cached, err := lookup.NewCachedStore(lookup.WithLatency(raw, runtime.latency), runtime.cacheSize)
	if err != nil {
		_ = closeAll()
		return nil, nil, func() error { return nil }, err
	}
	return cached, raw, closeAll, nil
}

// buildPicker wires a picker to store and applies the configured recovery.
func buildPicker(ctx context.Context, runtime runtimeOptions, served, raw catalog.Store) (picker, error) {
	cb := ui.NewComboBox(lookup.Source(served, runtime.sourceLimit)).
		WithInfoLoader(lookup.NewInfoLoader(served).Func()).
		WithLabel(lookup.Label).
		WithRenderItem(renderItem).
		WithPlaceholder(runtime.placeholder).
		WithWidth(runtime.width).
		WithMaxVisible(runtime.maxVisible).
		WithLookupTimeout(runtime.lookupTimeout).
		WithCursorMode(cursor.CursorStatic)

	switch runtime.recover {
	case config.RecoverVerbatim:
		cb = cb.WithRecoverVerbatim(true)
	case config.RecoverNearest:
		loadCtx, cancel := context.WithTimeout(ctx, loadTimeout(runtime.lookupTimeout))
		defer cancel()
		page, err := raw.Search(loadCtx, "", 0)
		if err != nil {
			return cb, err
		}
		cb = cb.WithRecovery(lookup.NearestRecovery(page.Items, runtime.recoverDistance))
	}
	return cb, nil
}

func loadTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return config.DefaultLookupTimeout
	}
	return d
}

// renderItem shows the ID next to the name when they differ.
func renderItem(id string, item catalog.Item, ok bool) string {
	label := lookup.Label(id, item, ok)
	if !ok || label == id {
		return label
	}
	return label + " (" + id + ")"
}
