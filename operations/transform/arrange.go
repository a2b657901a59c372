package transform

import (
	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/expr"
)

// Arrange sorts the rows of a DataFrame by keys, which are column names,
// expressions, or either wrapped in Desc. Missing values sort last.
func Arrange(keys ...interface{}) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.ArrangeTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			sortKeys := make([]dpyr.SortKey, 0, len(keys))
			for _, key := range keys {
				descending := false
				if desc, ok := key.(DescendingArg); ok {
					key = desc.Key
					descending = true
				}
				e, err := expr.Parse("arrange", key)
				if err != nil {
					return nil, err
				}
				sortKeys = append(sortKeys, dpyr.SortKey{Expr: e, Descending: descending})
			}
			return d.GetEngine().Sort(d, sortKeys...)
		},
	}
}
