package dpyr

import "github.com/go-sif/dpyr/expr"

// SortKey describes one key of a sort
type SortKey struct {
	Expr       expr.Expr
	Descending bool
}

// CSVOptions describes how an Engine should read delimited files
type CSVOptions struct {
	Delimiter rune   // The delimiter separating columns
	Header    bool   // Whether the first line after SkipLines names the columns
	SkipLines int    // The number of lines to ignore at the beginning of each file
	Comment   rune   // Lines beginning with the comment character are ignored. 0 means none.
	NilValue  string // A special string which represents nil values
}

// Engine is a columnar dataframe engine. It supplies the primitives which every
// DataFrameOperation delegates to. Every primitive produces a new DataFrame and
// leaves its input untouched; failures are reported exactly as the Engine raises them.
type Engine interface {
	// Select projects df through exprs, naming outputs by alias
	Select(df DataFrame, exprs ...expr.Expr) (DataFrame, error)
	// Filter retains the rows for which every predicate holds
	Filter(df DataFrame, predicates ...expr.Expr) (DataFrame, error)
	// WithColumns replaces or appends the columns named by the outputs of exprs
	WithColumns(df DataFrame, exprs ...expr.Expr) (DataFrame, error)
	// Sort orders rows by keys
	Sort(df DataFrame, keys ...SortKey) (DataFrame, error)
	// Head retains the first n rows
	Head(df DataFrame, n int) (DataFrame, error)
	// Unique removes duplicate rows, comparing only subset columns if any are given
	Unique(df DataFrame, subset ...string) (DataFrame, error)
	// GroupCount counts rows per distinct combination of keys, ordered by keys
	GroupCount(df DataFrame, countName string, keys ...expr.Expr) (DataFrame, error)
	// ReadCSV loads delimited files matching a glob
	ReadCSV(glob string, opts CSVOptions) (DataFrame, error)
	// FromRows loads in-memory rows
	FromRows(schema Schema, rows [][]interface{}) (DataFrame, error)
	// Collect materializes a DataFrame
	Collect(df DataFrame) (*Records, error)
	// Release frees the resources backing a DataFrame
	Release(df DataFrame) error
}
