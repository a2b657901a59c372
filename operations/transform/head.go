package transform

import (
	"fmt"

	"github.com/go-sif/dpyr"
)

// Head retains the first n rows of a DataFrame
func Head(n int) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.HeadTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			if n < 0 {
				return nil, fmt.Errorf("head expected a non-negative number of rows but got %d", n)
			}
			return d.GetEngine().Head(d, n)
		},
	}
}
