package transform

import (
	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/expr"
)

// Filter retains the rows of a DataFrame for which every predicate holds. A column
// name used as a predicate refers to a boolean column.
func Filter(predicates ...interface{}) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.FilterTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			exprs, err := expr.ParseAll("filter", predicates)
			if err != nil {
				return nil, err
			}
			return d.GetEngine().Filter(d, exprs...)
		},
	}
}
