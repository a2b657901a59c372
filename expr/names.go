package expr

import (
	errors "github.com/go-sif/dpyr/errors"
)

// RootNames returns the distinct columns referenced by e, in order of first appearance
func (e Expr) RootNames() []string {
	seen := make(map[string]bool)
	names := []string{}
	var walk func(x Expr)
	walk = func(x Expr) {
		if x.kind == ColumnKind {
			if !seen[x.name] {
				seen[x.name] = true
				names = append(names, x.name)
			}
			return
		}
		for _, arg := range x.args {
			walk(arg)
		}
	}
	walk(e)
	return names
}

// OutputName returns the name a column computed from e receives: its alias if it
// has one, otherwise the first column it references. Raw fragments are named by
// their text, and expressions over literals alone are named "literal".
func (e Expr) OutputName() string {
	if e.kind == AliasKind {
		return e.name
	}
	if e.kind == SQLKind {
		return e.name
	}
	if roots := e.RootNames(); len(roots) > 0 {
		return roots[0]
	}
	return "literal"
}

// Parse interprets an operation argument: a string names a column, an Expr is used
// as it is. Anything else is rejected with an InvalidArgumentError naming the operation.
func Parse(operation string, arg interface{}) (Expr, error) {
	switch x := arg.(type) {
	case string:
		return Col(x), nil
	case Expr:
		return x, nil
	case *Expr:
		if x != nil {
			return *x, nil
		}
	}
	return Expr{}, errors.InvalidArgumentError{Operation: operation, Value: arg}
}

// ParseAll applies Parse to every argument
func ParseAll(operation string, args []interface{}) ([]Expr, error) {
	exprs := make([]Expr, 0, len(args))
	for _, arg := range args {
		e, err := Parse(operation, arg)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// ColumnName returns the name of the single column an argument refers to. A string
// is returned as it is; an Expr must reference exactly one distinct column, otherwise
// an AmbiguousExpressionError is returned.
func ColumnName(arg interface{}) (string, error) {
	if name, ok := arg.(string); ok {
		return name, nil
	}
	e, err := Parse("column name extraction", arg)
	if err != nil {
		return "", err
	}
	roots := e.RootNames()
	if len(roots) != 1 {
		return "", errors.AmbiguousExpressionError{Expr: e.String(), Columns: roots}
	}
	return roots[0], nil
}
