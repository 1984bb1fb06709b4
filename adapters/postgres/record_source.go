// Package postgres implements the record source port over a SQL
// database, the usual backing store for dashboard charts.
package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"chartcore/domain/record"
	"chartcore/ports"
)

// recordSource implements ports.RecordSource over sqlx.
type recordSource struct {
	db *sqlx.DB
}

// NewRecordSource creates a record source backed by an open database.
func NewRecordSource(db *sqlx.DB) ports.RecordSource {
	return &recordSource{db: db}
}

// Open connects to the database and wraps it as a record source.
func Open(databaseURL string) (ports.RecordSource, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return NewRecordSource(db), nil
}

// Query runs a read-only query and returns each row as an open record.
// Column names become field names; values keep their driver types and
// go through the record accessors' coercion rules downstream.
func (s *recordSource) Query(ctx context.Context, query string) ([]record.Raw, error) {
	rows, err := s.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []record.Raw
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		for k, v := range row {
			// Drivers hand back []byte for text columns.
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		records = append(records, record.Raw(row))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}
	return records, nil
}
