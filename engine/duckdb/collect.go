package duckdb

import (
	"fmt"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/schema"
	"go.uber.org/zap"
)

// describe derives a Schema from the columns of a table
func (e *Engine) describe(table string) (dpyr.Schema, error) {
	rows, err := e.db.Query("SELECT * FROM " + quoteIdent(table) + " LIMIT 0")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}
	s := schema.CreateSchema()
	for _, ct := range colTypes {
		if _, err := s.CreateColumn(ct.Name(), columnType(ct.DatabaseTypeName())); err != nil {
			return nil, err
		}
	}
	return s, rows.Err()
}

// Collect reads every row of a DataFrame, in order
func (e *Engine) Collect(df dpyr.DataFrame) (*dpyr.Records, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	query := "SELECT * FROM " + quoteIdent(f.table)
	e.logger.Debug("query", zap.String("sql", query))
	rows, err := e.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := &dpyr.Records{
		Columns: f.schema.ColumnNames(),
		Types:   f.schema.ColumnTypes(),
		Rows:    [][]interface{}{},
	}
	width := len(records.Columns)
	for rows.Next() {
		values := make([]interface{}, width)
		ptrs := make([]interface{}, width)
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row %d of %s: %w", len(records.Rows), f.table, err)
		}
		for i, v := range values {
			values[i] = normalize(v)
		}
		records.Rows = append(records.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
