package duckdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sif/dpyr"
)

// ReadCSV loads every delimited file matching glob into a new DataFrame. Column
// types are inferred by DuckDB.
func (e *Engine) ReadCSV(glob string, opts dpyr.CSVOptions) (dpyr.DataFrame, error) {
	delimiter := opts.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}
	params := []string{
		quoteString(glob),
		"delim = " + quoteString(string(delimiter)),
		"header = " + strconv.FormatBool(opts.Header),
		"skip = " + strconv.Itoa(opts.SkipLines),
	}
	if len(opts.NilValue) > 0 {
		params = append(params, "nullstr = "+quoteString(opts.NilValue))
	}
	if opts.Comment != 0 {
		params = append(params, "comment = "+quoteString(string(opts.Comment)))
	}
	return e.derive("SELECT * FROM read_csv(" + strings.Join(params, ", ") + ")")
}

// FromRows loads rows into a new DataFrame with the given Schema. Every row must
// hold one value per column, in Schema order.
func (e *Engine) FromRows(s dpyr.Schema, rows [][]interface{}) (dpyr.DataFrame, error) {
	if s == nil || s.NumColumns() == 0 {
		return nil, fmt.Errorf("cannot create a DataFrame without columns")
	}
	names := s.ColumnNames()
	definitions := make([]string, len(names))
	placeholders := make([]string, len(names))
	for i, colType := range s.ColumnTypes() {
		t, err := engineType(colType)
		if err != nil {
			return nil, err
		}
		definitions[i] = quoteIdent(names[i]) + " " + t
		placeholders[i] = "?"
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d has %d values but the schema has %d columns", i, len(row), len(names))
		}
	}

	table, err := newTableName()
	if err != nil {
		return nil, err
	}
	if err := e.exec("CREATE TABLE " + quoteIdent(table) + " (" + strings.Join(definitions, ", ") + ")"); err != nil {
		return nil, err
	}
	if err := e.insert(table, placeholders, rows); err != nil {
		_ = e.exec("DROP TABLE IF EXISTS " + quoteIdent(table))
		return nil, err
	}
	return e.adopt(table)
}

// insert appends rows to a table within a single transaction
func (e *Engine) insert(table string, placeholders []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := e.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO " + quoteIdent(table) + " VALUES (" + strings.Join(placeholders, ", ") + ")")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	args := make([]interface{}, len(placeholders))
	for i, row := range rows {
		for j, v := range row {
			args[j] = normalize(v)
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}
