package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

func fetchRows(rows *sqlx.Rows, mode FetchMode) (*RowSet, error) {
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns: %w", err)
	}

	set := &RowSet{Mode: mode, Columns: columns}
	for rows.Next() {
		switch mode {
		case FetchNum, FetchColumn:
			values, err := rows.SliceScan()
			if err != nil {
				return nil, fmt.Errorf("scanning row: %w", err)
			}
			for i := range values {
				values[i] = normalizeValue(values[i])
			}
			if mode == FetchNum {
				set.Rows = append(set.Rows, values)
			} else if len(values) > 0 {
				set.Column = append(set.Column, values[0])
			}
		default:
			row := make(map[string]any, len(columns))
			if err := rows.MapScan(row); err != nil {
				return nil, fmt.Errorf("scanning row: %w", err)
			}
			for k, v := range row {
				row[k] = normalizeValue(v)
			}
			set.Assoc = append(set.Assoc, row)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return set, nil
}

// normalizeValue turns driver byte slices into strings. MySQL reports most
// text columns as []byte.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
