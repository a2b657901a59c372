package util

import (
	"os"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/display"
	"github.com/hashicorp/go-multierror"
)

// DefaultPreviewRows is the number of rows shown by a preview unless otherwise specified
const DefaultPreviewRows = 5

// Preview displays the first n rows of a DataFrame as a table on standard output,
// preceded by label unless it is empty, and passes the DataFrame on unchanged. If n
// is not positive, DefaultPreviewRows are shown.
func Preview(label string, n int) *dpyr.DataFrameOperation {
	return PreviewTo(display.NewTableDisplayer(os.Stdout), label, n)
}

// PreviewTo is like Preview, but presents rows through the given Displayer
func PreviewTo(d dpyr.Displayer, label string, n int) *dpyr.DataFrameOperation {
	if n <= 0 {
		n = DefaultPreviewRows
	}
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.PreviewTaskType,
		Do: func(df dpyr.DataFrame) (dpyr.DataFrame, error) {
			head, err := df.GetEngine().Head(df, n)
			if err != nil {
				return nil, err
			}
			records, err := head.Collect()
			if releaseErr := head.Release(); releaseErr != nil {
				err = multierror.Append(err, releaseErr).ErrorOrNil()
			}
			if err != nil {
				return nil, err
			}
			if err := d.Display(label, records); err != nil {
				return nil, err
			}
			return df, nil
		},
	}
}
