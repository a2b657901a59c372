// Package memory creates DataFrames from rows of Go values
package memory

import (
	"fmt"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/schema"
)

// CreateDataFrame loads rows into a DataFrame held by eng. Each row holds one value
// per column of s, in order; nil stands for a missing value.
func CreateDataFrame(eng dpyr.Engine, s dpyr.Schema, rows [][]interface{}) (dpyr.DataFrame, error) {
	if eng == nil {
		return nil, fmt.Errorf("cannot create a DataFrame without an Engine")
	}
	return eng.FromRows(s, rows)
}

// CreateDataFrameFromRecords loads previously collected Records into a DataFrame
// held by eng. The columns of records must match s in name, type and order.
func CreateDataFrameFromRecords(eng dpyr.Engine, s dpyr.Schema, records *dpyr.Records) (dpyr.DataFrame, error) {
	if records == nil {
		return nil, fmt.Errorf("cannot create a DataFrame from nil Records")
	}
	if len(records.Columns) != len(records.Types) {
		return nil, fmt.Errorf("records have %d column names but %d column types", len(records.Columns), len(records.Types))
	}
	recordSchema := schema.CreateSchema()
	for i, name := range records.Columns {
		if _, err := recordSchema.CreateColumn(name, records.Types[i]); err != nil {
			return nil, err
		}
	}
	if err := s.Equals(recordSchema); err != nil {
		return nil, fmt.Errorf("records do not match the schema: %w", err)
	}
	return CreateDataFrame(eng, s, records.Rows)
}
