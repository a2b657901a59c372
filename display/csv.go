package display

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-sif/dpyr"
)

// CSVDisplayer renders Records as CSV with a header row. Missing values are written as empty fields.
type CSVDisplayer struct {
	writer io.Writer
}

// NewCSVDisplayer creates a CSVDisplayer writing to w
func NewCSVDisplayer(w io.Writer) *CSVDisplayer {
	return &CSVDisplayer{writer: w}
}

// Display writes the Records as CSV. The label is not written.
func (d *CSVDisplayer) Display(label string, records *dpyr.Records) error {
	if records == nil {
		return nil
	}
	csvWriter := csv.NewWriter(d.writer)
	if err := csvWriter.Write(records.Columns); err != nil {
		return err
	}
	rows := records.Strings()
	for i, row := range records.Rows {
		for j, v := range row {
			if v == nil {
				rows[i][j] = ""
			}
		}
	}
	if err := csvWriter.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
