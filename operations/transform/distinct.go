package transform

import (
	"github.com/go-sif/dpyr"
	errors "github.com/go-sif/dpyr/errors"
	"github.com/go-sif/dpyr/expr"
)

// Distinct removes duplicate rows. With no arguments whole rows are compared;
// otherwise rows are compared on the given columns only, each named either
// directly or by an expression referencing exactly one column.
func Distinct(args ...interface{}) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.DistinctTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			subset, err := columnNames("distinct", args)
			if err != nil {
				return nil, err
			}
			return d.GetEngine().Unique(d, subset...)
		},
	}
}

// columnNames resolves arguments which must each denote a single column
func columnNames(operation string, args []interface{}) ([]string, error) {
	names := make([]string, 0, len(args))
	for _, arg := range args {
		name, err := columnName(operation, arg)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func columnName(operation string, arg interface{}) (string, error) {
	switch arg.(type) {
	case string, expr.Expr, *expr.Expr:
		return expr.ColumnName(arg)
	}
	return "", errors.InvalidArgumentError{Operation: operation, Value: arg}
}
