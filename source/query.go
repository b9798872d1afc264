package source

import (
	"context"
	"database/sql"
	"fmt"
)

// Query runs query on db and loads the full result into a Table.
//
// database/sql rows are forward-only; materializing them gives the Cursor
// the random access it needs.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) (*Table, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("source: query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("source: columns: %w", err)
	}

	var data [][]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("source: scan row %d: %w", len(data), err)
		}
		data = append(data, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source: rows: %w", err)
	}

	return NewTable(columns, data)
}
