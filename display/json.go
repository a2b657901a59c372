package display

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-sif/dpyr"
	gojson "github.com/goccy/go-json"
)

// JSONDisplayer renders Records as JSON Lines: one object per row, with keys in column order
type JSONDisplayer struct {
	writer io.Writer
}

// NewJSONDisplayer creates a JSONDisplayer writing to w
func NewJSONDisplayer(w io.Writer) *JSONDisplayer {
	return &JSONDisplayer{writer: w}
}

// Display writes one JSON object per row. The label is not written.
func (d *JSONDisplayer) Display(label string, records *dpyr.Records) error {
	if records == nil {
		return nil
	}
	keys := make([][]byte, len(records.Columns))
	for i, col := range records.Columns {
		key, err := gojson.Marshal(col)
		if err != nil {
			return err
		}
		keys[i] = key
	}
	w := bufio.NewWriter(d.writer)
	for rowNum, row := range records.Rows {
		w.WriteByte('{')
		for i, v := range row {
			if i > 0 {
				w.WriteByte(',')
			}
			value, err := gojson.Marshal(v)
			if err != nil {
				return fmt.Errorf("failed to encode row %d column %s: %w", rowNum, records.Columns[i], err)
			}
			w.Write(keys[i])
			w.WriteByte(':')
			w.Write(value)
		}
		w.WriteString("}\n")
	}
	return w.Flush()
}
