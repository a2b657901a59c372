package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/go-sif/dpyr"
	"github.com/stretchr/testify/require"
)

func testRecords() *dpyr.Records {
	return &dpyr.Records{
		Columns: []string{"name", "score", "seen"},
		Types:   []dpyr.ColumnType{&dpyr.StringColumnType{}, &dpyr.Float64ColumnType{}, &dpyr.TimeColumnType{Format: "2006-01-02"}},
		Rows: [][]interface{}{
			{"ann", 1.5, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC)},
			{"bob", nil, nil},
		},
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	for format, expected := range map[string]interface{}{
		"":      &TableDisplayer{},
		"table": &TableDisplayer{},
		" CSV ": &CSVDisplayer{},
		"json":  &JSONDisplayer{},
	} {
		d, err := New(format, &buf)
		require.NoError(t, err)
		require.IsType(t, expected, d)
	}
	_, err := New("xml", &buf)
	require.Error(t, err)
}

func TestTableDisplayer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableDisplayer(&buf).Display("Data preview", testRecords()))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "Data preview\n"))
	require.Contains(t, out, "name")
	require.Contains(t, out, "2021-03-04")
	require.Contains(t, out, "null")
	require.True(t, strings.HasSuffix(out, "shape: (2, 3)\n"))

	buf.Reset()
	require.NoError(t, NewTableDisplayer(&buf).Display("", testRecords()))
	require.False(t, strings.HasPrefix(buf.String(), "\n"))

	buf.Reset()
	require.NoError(t, NewTableDisplayer(&buf).Display("", nil))
	require.Equal(t, "null\n", buf.String())
}

func TestCSVDisplayer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVDisplayer(&buf).Display("ignored", testRecords()))
	require.Equal(t, "name,score,seen\nann,1.5,2021-03-04\nbob,,\n", buf.String())

	// the string "null" stays distinct from a missing value
	buf.Reset()
	records := &dpyr.Records{
		Columns: []string{"word", "n"},
		Types:   []dpyr.ColumnType{&dpyr.StringColumnType{}, &dpyr.Int64ColumnType{}},
		Rows:    [][]interface{}{{"null", int64(1)}, {nil, int64(2)}},
	}
	require.NoError(t, NewCSVDisplayer(&buf).Display("", records))
	require.Equal(t, "word,n\nnull,1\n,2\n", buf.String())
}

func TestJSONDisplayer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONDisplayer(&buf).Display("ignored", testRecords()))
	require.Equal(t,
		`{"name":"ann","score":1.5,"seen":"2021-03-04T00:00:00Z"}`+"\n"+
			`{"name":"bob","score":null,"seen":null}`+"\n",
		buf.String())
}
