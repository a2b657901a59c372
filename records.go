package dpyr

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	errors "github.com/go-sif/dpyr/errors"
)

// Records are the materialized rows of a DataFrame. Integer values are int64 and
// floating point values are float64, regardless of their width within the Engine.
type Records struct {
	Columns []string
	Types   []ColumnType
	Rows    [][]interface{}
}

// NumRows returns the number of rows in these Records
func (r *Records) NumRows() int {
	return len(r.Rows)
}

// NumColumns returns the number of columns in these Records
func (r *Records) NumColumns() int {
	return len(r.Columns)
}

// Column returns every value of a named column, in row order
func (r *Records) Column(name string) ([]interface{}, error) {
	idx := -1
	for i, col := range r.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.MissingColumnError{Name: name}
	}
	values := make([]interface{}, len(r.Rows))
	for i, row := range r.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Strings renders every value as text, using the ColumnType of its column
func (r *Records) Strings() [][]string {
	out := make([][]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = r.typeOf(j).ToString(v)
		}
	}
	return out
}

// TypeNames returns the name of the ColumnType of every column
func (r *Records) TypeNames() []string {
	names := make([]string, len(r.Columns))
	for i := range r.Columns {
		names[i] = r.typeOf(i).Name()
	}
	return names
}

// Fingerprint digests column names and values. Records with equal names and
// equal values, in the same order, have equal fingerprints.
func (r *Records) Fingerprint() uint64 {
	h := xxhash.New()
	for _, col := range r.Columns {
		_, _ = h.WriteString(strconv.Quote(col))
	}
	_, _ = h.WriteString("|")
	for _, row := range r.Rows {
		for _, v := range row {
			_, _ = h.WriteString(fmt.Sprintf("%T:%v;", v, v))
		}
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}

func (r *Records) typeOf(i int) ColumnType {
	if i < len(r.Types) && r.Types[i] != nil {
		return r.Types[i]
	}
	return &OtherColumnType{EngineType: "unknown"}
}
