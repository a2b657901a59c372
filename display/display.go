// Package display renders collected Records for people and for other programs.
//
// The table format is meant for terminals. The csv and json formats are meant for
// other programs, and therefore omit labels:
//
//	d, err := display.New("table", os.Stdout)
//	if err != nil {
//		return err
//	}
//	err = d.Display("Data preview", records)
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/dpyr"
)

// Formats lists the names accepted by New
var Formats = []string{"table", "csv", "json"}

// New creates a Displayer writing to w in the named format. An empty name selects
// the table format.
func New(format string, w io.Writer) (dpyr.Displayer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "table":
		return NewTableDisplayer(w), nil
	case "csv":
		return NewCSVDisplayer(w), nil
	case "json":
		return NewJSONDisplayer(w), nil
	}
	return nil, fmt.Errorf("unknown display format %q, expected one of %s", format, strings.Join(Formats, ", "))
}
