package transform

import (
	"github.com/go-sif/dpyr"
)

// Select projects a DataFrame onto columns and expressions. Each output is named
// by its alias or Named binding, otherwise by the first column it references.
func Select(args ...interface{}) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.SelectTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			exprs, err := parseArgs("select", args)
			if err != nil {
				return nil, err
			}
			return d.GetEngine().Select(d, exprs...)
		},
	}
}
