package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "seekbox/internal/errors"
)

func TestSearchRejectsInvalidQuery(t *testing.T) {
	sqliteStore, err := NewSQLiteStore(testSQLiteDB(t, "fruit", sampleItems()), "fruit")
	require.NoError(t, err)

	stores := map[string]Store{
		"memory": NewMemoryStore(sampleItems()),
		"sqlite": sqliteStore,
		"index":  newTestIndexStore(t),
	}
	queries := map[string]string{
		"TooLong":     strings.Repeat("a", MaxQueryLength+1),
		"ControlChar": "app\x00le",
		"Newline":     "apple\nbanana",
	}

	for storeName, store := range stores {
		for queryName, query := range queries {
			t.Run(storeName+"/"+queryName, func(t *testing.T) {
				page, err := store.Search(context.Background(), query, 0)
				require.Error(t, err)
				assert.True(t, appErrors.IsCode(err, appErrors.CodeInvalidQuery), "got %v", err)
				assert.Empty(t, page.Items)
			})
		}
	}
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, validateQuery(""))
	assert.NoError(t, validateQuery(strings.Repeat("é", MaxQueryLength)))
	assert.NoError(t, validateQuery("C++ / C#"))
	assert.True(t, appErrors.IsCode(validateQuery(strings.Repeat("é", MaxQueryLength+1)), appErrors.CodeInvalidQuery))
	assert.True(t, appErrors.IsCode(validateQuery("tab\there"), appErrors.CodeInvalidQuery))
}
