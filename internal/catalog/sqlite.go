package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	appErrors "seekbox/internal/errors"
)

// DefaultTable is the table read when none is configured.
const DefaultTable = "items"

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteStore reads items from a table with id, name and description
// columns, opening the database read-only for every call.
//
// Matching is a case-insensitive substring match on name; names that start
// with the query sort first, then by name and ID.
type SQLiteStore struct {
	dbPath string
	dsn    string
	table  string
}

// NewSQLiteStore validates the table name and prepares a read-only DSN.
// The database is not opened until the first query.
func NewSQLiteStore(dbPath, table string) (*SQLiteStore, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "sqlite store requires a database path", nil)
	}
	if table == "" {
		table = DefaultTable
	}
	if !tableNamePattern.MatchString(table) {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("invalid table name %q", table), nil)
	}
	return &SQLiteStore{
		dbPath: trimmed,
		dsn:    buildSQLiteDSN(trimmed),
		table:  table,
	}, nil
}

// buildSQLiteDSN creates a read-only WAL DSN for the given path.
func buildSQLiteDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("cache", "shared")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SQLiteStore) openDB(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreUnavailable, "open sqlite db", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeStoreUnavailable, "ping sqlite db", err)
	}
	return db, nil
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) (Page, error) {
	if err := validateQuery(query); err != nil {
		return Page{}, err
	}
	db, err := s.openDB(ctx)
	if err != nil {
		return Page{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	escaped := escapeLike(strings.TrimSpace(query))
	contains := "%" + escaped + "%"
	prefix := escaped + "%"
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	var total int
	countSQL := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE name LIKE ? ESCAPE '\'`, s.table)
	if err := db.QueryRowContext(ctx, countSQL, contains).Scan(&total); err != nil {
		return Page{}, classifyQueryError("count items", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, name, COALESCE(description, '')
		FROM %s
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY CASE WHEN name LIKE ? ESCAPE '\' THEN 0 ELSE 1 END, name, id
		LIMIT ?
	`, s.table), contains, prefix, limit)
	if err != nil {
		return Page{}, classifyQueryError("query items", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	page := Page{Total: total}
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description); err != nil {
			return Page{}, classifyQueryError("scan item", err)
		}
		page.Items = append(page.Items, item)
	}
	if err := rows.Err(); err != nil {
		return Page{}, classifyQueryError("iterate items", err)
	}
	storeLog.Logf("sqlite %s: %q -> %d of %d", s.table, query, len(page.Items), total)
	return page, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (Item, error) {
	db, err := s.openDB(ctx)
	if err != nil {
		return Item{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	var item Item
	row := db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT id, name, COALESCE(description, '') FROM %s WHERE id = ?`, s.table), id)
	if err := row.Scan(&item.ID, &item.Name, &item.Description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, notFound(id)
		}
		return Item{}, classifyQueryError("get item", err)
	}
	return item, nil
}
