package catalog

import (
	"context"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	appErrors "seekbox/internal/errors"
)

var (
	// ErrNotFound indicates no item has the requested ID.
	ErrNotFound = errors.New("catalog: item not found")
)

// MaxQueryLength is the longest search text, in runes, a store accepts.
const MaxQueryLength = 256

// validateQuery rejects search text no item name could match.
func validateQuery(query string) error {
	if n := utf8.RuneCountInString(query); n > MaxQueryLength {
		return appErrors.New(appErrors.CodeInvalidQuery,
			fmt.Sprintf("query is %d characters, limit is %d", n, MaxQueryLength), nil)
	}
	for _, r := range query {
		if unicode.IsControl(r) {
			return appErrors.New(appErrors.CodeInvalidQuery,
				fmt.Sprintf("query contains control character %U", r), nil)
		}
	}
	return nil
}

func notFound(id string) error {
	return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("item %q not found", id), ErrNotFound)
}

// classifyQueryError maps a failed query to a structured error. Context
// errors stay lookup failures so callers can tell them from a broken store.
func classifyQueryError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return appErrors.New(appErrors.CodeLookupFailed, op+" interrupted", err)
	}
	return appErrors.New(appErrors.CodeStoreUnavailable, op+" failed", err)
}
