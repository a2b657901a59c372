package errors

import (
	"fmt"
	"strings"
)

// AmbiguousExpressionError occurs when an expression is used where a single column
// name is required, but the expression references zero or several distinct columns
type AmbiguousExpressionError struct {
	Expr    string
	Columns []string
}

// Error returns a textual representation of this AmbiguousExpressionError
func (e AmbiguousExpressionError) Error() string {
	if len(e.Columns) == 0 {
		return fmt.Sprintf("Expected column but got expression %s (references no columns)", e.Expr)
	}
	return fmt.Sprintf("Expected column but got expression %s (references %s)", e.Expr, strings.Join(e.Columns, ", "))
}

// MissingColumnError occurs when an operation refers to a column which is not present in a DataFrame
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column %s does not exist", e.Name)
}

// DuplicateColumnError occurs when an operation would produce two columns with the same name
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column %s already exists", e.Name)
}

// InvalidArgumentError occurs when an operation receives an argument of a type it cannot interpret
type InvalidArgumentError struct {
	Operation string
	Value     interface{}
}

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s expected a column name or expression but got %T (%v)", e.Operation, e.Value, e.Value)
}

// ForeignFrameError occurs when a DataFrame is handed to an Engine which did not create it
type ForeignFrameError struct{}

// Error returns a textual representation of this ForeignFrameError
func (e ForeignFrameError) Error() string {
	return "DataFrame was not created by this engine"
}

// ReleasedFrameError occurs when a DataFrame is used after it has been released
type ReleasedFrameError struct{ Table string }

// Error returns a textual representation of this ReleasedFrameError
func (e ReleasedFrameError) Error() string {
	return fmt.Sprintf("DataFrame backed by %s has been released", e.Table)
}
