// Package sql materializes database/sql query results as contiguous
// buffers, so that result sets can be scanned with the short-circuiting
// operations of the rawslice package.
package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lguimbarda/rawslice"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Collect executes a query and decodes every row into a slice. The rows
// handle is always closed. The first failing row aborts the collection.
func Collect[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		value, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out), err)
		}
		out = append(out, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// Query executes a query and returns an iterator over the decoded rows.
// The result set is fully materialized before the iterator is returned;
// the iterator borrows that buffer and nothing else.
func Query[T any](ctx context.Context, db *sql.DB, query string, scan Scanner[T], args ...any) (rawslice.Iter[T], error) {
	out, err := Collect(ctx, db, query, scan, args...)
	if err != nil {
		return rawslice.Iter[T]{}, err
	}
	return rawslice.FromSlice(out), nil
}
