package transform

import (
	"github.com/go-sif/dpyr"
)

// Mutate adds or replaces columns. Arguments are Named bindings or expressions; an
// output whose name matches an existing column replaces it in place, while new
// columns are appended in argument order.
func Mutate(args ...interface{}) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.MutateTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			exprs, err := parseArgs("mutate", args)
			if err != nil {
				return nil, err
			}
			return d.GetEngine().WithColumns(d, exprs...)
		},
	}
}
