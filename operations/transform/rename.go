package transform

import (
	"github.com/go-sif/dpyr"
	errors "github.com/go-sif/dpyr/errors"
	"github.com/go-sif/dpyr/expr"
	"github.com/hashicorp/go-multierror"
)

// Rename renames columns, binding each new name to an existing column:
// Named("new", "old") or Named("new", expr.Col("old")). Every column is kept, in
// its original position. If a column is renamed more than once, the last binding wins.
// Renaming onto the name of a column which keeps its own name fails with a
// DuplicateColumnError.
func Rename(renames ...NamedArg) *dpyr.DataFrameOperation {
	return &dpyr.DataFrameOperation{
		TaskType: dpyr.RenameTaskType,
		Do: func(d dpyr.DataFrame) (dpyr.DataFrame, error) {
			s := d.GetSchema()
			newNames := make(map[string]string, len(renames))
			var multierr *multierror.Error
			for _, r := range renames {
				old, err := columnName("rename", r.Value)
				if err != nil {
					return nil, err
				}
				if !s.HasColumn(old) {
					multierr = multierror.Append(multierr, errors.MissingColumnError{Name: old})
					continue
				}
				newNames[old] = r.Name
			}
			if err := multierr.ErrorOrNil(); err != nil {
				return nil, err
			}
			names := s.ColumnNames()
			projection := make([]expr.Expr, len(names))
			for i, name := range names {
				projection[i] = expr.Col(name)
				if newName, ok := newNames[name]; ok && newName != name {
					projection[i] = projection[i].Alias(newName)
				}
			}
			return d.GetEngine().Select(d, projection...)
		},
	}
}
