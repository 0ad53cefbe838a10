package seeder

import (
	"context"
	"errors"
	"fmt"

	"mentor-match/internal/database"
)

type TableColumns struct {
	Table   string
	Columns []string
}

// EnsureSchema checks every listed table and column against
// information_schema and reports all gaps at once.
func EnsureSchema(ctx context.Context, db database.Querier, tables ...TableColumns) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	var gaps []error
	for _, tc := range tables {
		if tc.Table == "" {
			return fmt.Errorf("empty table")
		}
		existing, err := tableColumns(ctx, db, tc.Table)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", tc.Table, err)
		}
		if len(existing) == 0 {
			gaps = append(gaps, fmt.Errorf("schema mismatch: missing table %s", tc.Table))
			continue
		}
		for _, col := range tc.Columns {
			if col == "" {
				return fmt.Errorf("empty column in %s", tc.Table)
			}
			if _, ok := existing[col]; !ok {
				gaps = append(gaps, fmt.Errorf("schema mismatch: missing column %s.%s", tc.Table, col))
			}
		}
	}
	return errors.Join(gaps...)
}

func tableColumns(ctx context.Context, db database.Querier, table string) (map[string]struct{}, error) {
	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out[c] = struct{}{}
	}
	return out, rows.Err()
}
