package display

import (
	"fmt"
	"io"

	"github.com/go-sif/dpyr"
	"github.com/olekukonko/tablewriter"
)

// TableDisplayer renders Records as a text table, followed by their shape
type TableDisplayer struct {
	writer io.Writer
}

// NewTableDisplayer creates a TableDisplayer writing to w
func NewTableDisplayer(w io.Writer) *TableDisplayer {
	return &TableDisplayer{writer: w}
}

// Display writes the label, if any, then a table of the Records
func (d *TableDisplayer) Display(label string, records *dpyr.Records) error {
	if len(label) > 0 {
		if _, err := fmt.Fprintln(d.writer, label); err != nil {
			return err
		}
	}
	if records == nil {
		_, err := fmt.Fprintln(d.writer, nilString)
		return err
	}
	table := tablewriter.NewWriter(d.writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(records.Columns)
	table.AppendBulk(records.Strings())
	table.Render()
	_, err := fmt.Fprintf(d.writer, "shape: (%d, %d)\n", records.NumRows(), records.NumColumns())
	return err
}

const nilString = "null"
