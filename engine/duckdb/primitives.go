package duckdb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-sif/dpyr"
	errors "github.com/go-sif/dpyr/errors"
	"github.com/go-sif/dpyr/expr"
)

// Select projects a DataFrame through exprs. Each output column is named by the
// OutputName of its Expr, and no two outputs may share a name.
func (e *Engine) Select(df dpyr.DataFrame, exprs ...expr.Expr) (dpyr.DataFrame, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	if len(exprs) == 0 {
		return nil, fmt.Errorf("select requires at least one expression")
	}
	if err := checkOutputNames(outputNames(exprs)...); err != nil {
		return nil, err
	}
	items, err := projections(exprs)
	if err != nil {
		return nil, err
	}
	return e.derive("SELECT " + strings.Join(items, ", ") + " FROM " + quoteIdent(f.table))
}

// Filter retains the rows of a DataFrame for which every predicate holds.
// Aggregates within a predicate are computed over the whole DataFrame.
func (e *Engine) Filter(df dpyr.DataFrame, predicates ...expr.Expr) (dpyr.DataFrame, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	query := "SELECT * FROM " + quoteIdent(f.table)
	if len(predicates) == 0 {
		return e.derive(query)
	}
	conditions := make([]string, len(predicates))
	windowed := false
	for i, p := range predicates {
		c, err := compileOver(p)
		if err != nil {
			return nil, err
		}
		conditions[i] = c
		windowed = windowed || hasAggregate(p)
	}
	if !windowed {
		return e.derive(query + " WHERE " + strings.Join(conditions, " AND "))
	}
	// window functions are not allowed in WHERE, and do not preserve row order
	return e.derive(query + " QUALIFY " + strings.Join(conditions, " AND ") + " ORDER BY rowid")
}

// WithColumns computes exprs over a DataFrame. An output whose name matches an
// existing column replaces it in place; other outputs are appended in order. When
// several exprs share an output name, the last one wins. Aggregates are computed
// over the whole DataFrame and repeated on every row.
func (e *Engine) WithColumns(df dpyr.DataFrame, exprs ...expr.Expr) (dpyr.DataFrame, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	computed := make(map[string]string, len(exprs))
	var appended []string
	windowed := false
	for _, x := range exprs {
		name := x.OutputName()
		c, err := compileOver(x)
		if err != nil {
			return nil, err
		}
		windowed = windowed || hasAggregate(x)
		if _, seen := computed[name]; !seen && !f.schema.HasColumn(name) {
			appended = append(appended, name)
		}
		computed[name] = c + " AS " + quoteIdent(name)
	}
	items := make([]string, 0, f.schema.NumColumns()+len(appended))
	for _, name := range f.schema.ColumnNames() {
		if item, ok := computed[name]; ok {
			items = append(items, item)
		} else {
			items = append(items, quoteIdent(name))
		}
	}
	for _, name := range appended {
		items = append(items, computed[name])
	}
	query := "SELECT " + strings.Join(items, ", ") + " FROM " + quoteIdent(f.table)
	if windowed {
		query += " ORDER BY rowid"
	}
	return e.derive(query)
}

// Sort orders the rows of a DataFrame by keys, with nulls last
func (e *Engine) Sort(df dpyr.DataFrame, keys ...dpyr.SortKey) (dpyr.DataFrame, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	query := "SELECT * FROM " + quoteIdent(f.table)
	if len(keys) > 0 {
		terms := make([]string, len(keys))
		for i, k := range keys {
			c, err := compile(k.Expr)
			if err != nil {
				return nil, err
			}
			if k.Descending {
				terms[i] = c + " DESC NULLS LAST"
			} else {
				terms[i] = c + " ASC NULLS LAST"
			}
		}
		query += " ORDER BY " + strings.Join(terms, ", ")
	}
	return e.derive(query)
}

// Head retains the first n rows of a DataFrame
func (e *Engine) Head(df dpyr.DataFrame, n int) (dpyr.DataFrame, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("head requires a non-negative number of rows, got %d", n)
	}
	return e.derive("SELECT * FROM " + quoteIdent(f.table) + " LIMIT " + strconv.Itoa(n))
}

// Unique removes duplicate rows from a DataFrame. When subset names columns, rows
// are compared on those columns alone and one row of each duplicate set is kept.
func (e *Engine) Unique(df dpyr.DataFrame, subset ...string) (dpyr.DataFrame, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	if len(subset) == 0 {
		return e.derive("SELECT DISTINCT * FROM " + quoteIdent(f.table))
	}
	cols := make([]string, len(subset))
	for i, name := range subset {
		cols[i] = quoteIdent(name)
	}
	return e.derive("SELECT DISTINCT ON (" + strings.Join(cols, ", ") + ") * FROM " + quoteIdent(f.table))
}

// GroupCount counts the rows of a DataFrame per distinct combination of keys, in
// a column named countName. Groups are ordered by their keys. Without keys, the
// result is a single row holding the number of rows.
func (e *Engine) GroupCount(df dpyr.DataFrame, countName string, keys ...expr.Expr) (dpyr.DataFrame, error) {
	f, err := e.frame(df)
	if err != nil {
		return nil, err
	}
	if err := checkOutputNames(append(outputNames(keys), countName)...); err != nil {
		return nil, err
	}
	count := "count(*) AS " + quoteIdent(countName)
	if len(keys) == 0 {
		return e.derive("SELECT " + count + " FROM " + quoteIdent(f.table))
	}
	items, err := projections(keys)
	if err != nil {
		return nil, err
	}
	positions := make([]string, len(keys))
	for i := range keys {
		positions[i] = strconv.Itoa(i + 1)
	}
	return e.derive(fmt.Sprintf("SELECT %s, %s FROM %s GROUP BY %s ORDER BY %s",
		strings.Join(items, ", "),
		count,
		quoteIdent(f.table),
		strings.Join(positions, ", "),
		strings.Join(positions, ", ")))
}

// derive materializes a query as a new DataFrame
func (e *Engine) derive(query string) (dpyr.DataFrame, error) {
	f, err := e.materialize(query)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func projections(exprs []expr.Expr) ([]string, error) {
	items := make([]string, len(exprs))
	for i, x := range exprs {
		item, err := projection(x)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}
	return items, nil
}

func outputNames(exprs []expr.Expr) []string {
	names := make([]string, len(exprs))
	for i, x := range exprs {
		names[i] = x.OutputName()
	}
	return names
}

// checkOutputNames rejects a list of output columns in which a name repeats.
// DuckDB would otherwise rename the repeated column silently.
func checkOutputNames(names ...string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return errors.DuplicateColumnError{Name: name}
		}
		seen[name] = true
	}
	return nil
}
