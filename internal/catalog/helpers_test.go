package catalog

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func sampleItems() []Item {
	return []Item{
		{ID: "apple", Name: "Apple", Description: "A crisp red fruit"},
		{ID: "apricot", Name: "Apricot", Description: "A small orange stone fruit"},
		{ID: "banana", Name: "Banana", Description: "A long yellow fruit"},
		{ID: "pineapple", Name: "Pineapple", Description: "Tropical and spiky"},
	}
}

// testSQLiteDB creates a database holding items in table and returns its path.
func testSQLiteDB(t *testing.T, table string, items []Item) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() {
		_ = db.Close()
	}()

	_, err = db.Exec(`CREATE TABLE ` + table + ` (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT
	)`)
	require.NoError(t, err)

	for _, item := range items {
		var desc any
		if item.Description != "" {
			desc = item.Description
		}
		_, err := db.Exec(`INSERT INTO `+table+` (id, name, description) VALUES (?, ?, ?)`, item.ID, item.Name, desc)
		require.NoError(t, err)
	}
	return dbPath
}
