// Package transform provides the dplyr verbs: DataFrameOperations which derive a
// new DataFrame from an existing one, each delegating to a single Engine primitive.
//
// Operations accept column names (strings) and expressions (expr.Expr) wherever a
// column is expected:
//
//	df.To(
//		transform.Filter(expr.Col("qty").Gt(2)),
//		transform.Mutate(transform.Named("total", expr.Col("qty").Mul(expr.Col("price")))),
//		transform.Arrange(transform.Desc("total")),
//	)
package transform

import (
	"github.com/go-sif/dpyr/expr"
)

// NamedArg binds a value to a name, like a keyword argument. Depending on the
// operation, the name is that of an output column (Mutate, Select, Count) or the
// new name of an existing column (Rename).
type NamedArg struct {
	Name  string
	Value interface{}
}

// Named binds a value to a name
func Named(name string, value interface{}) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// DescendingArg marks an Arrange key as descending
type DescendingArg struct {
	Key interface{}
}

// Desc sorts by key in descending order
func Desc(key interface{}) DescendingArg {
	return DescendingArg{Key: key}
}

// parseArgs interprets column names, expressions and NamedArgs. The value of a
// NamedArg may be a column name, an expression or a constant, and its output is
// named by the binding.
func parseArgs(operation string, args []interface{}) ([]expr.Expr, error) {
	exprs := make([]expr.Expr, 0, len(args))
	for _, arg := range args {
		if named, ok := arg.(NamedArg); ok {
			exprs = append(exprs, parseNamed(operation, named))
			continue
		}
		e, err := expr.Parse(operation, arg)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func parseNamed(operation string, named NamedArg) expr.Expr {
	value, err := expr.Parse(operation, named.Value)
	if err != nil {
		value = expr.Lit(named.Value)
	}
	return value.Alias(named.Name)
}
