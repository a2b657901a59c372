package transform

import (
	"github.com/go-sif/dpyr"
)

// Count counts rows per distinct combination of grouping columns, which are column
// names, expressions or Named bindings deriving a new grouping column. The count is
// stored in a column named n, or nn, nnn and so on if a grouping column is already
// named n. Without arguments, Count produces a single row holding the number of rows.
func Count(args ...interface{}) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.CountTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			keys, err := parseArgs("count", args)
			if err != nil {
				return nil, err
			}
			taken := make(map[string]bool, len(keys))
			for _, k := range keys {
				taken[k.OutputName()] = true
			}
			countName := "n"
			for taken[countName] {
				countName += "n"
			}
			return d.GetEngine().GroupCount(d, countName, keys...)
		},
	}
}
