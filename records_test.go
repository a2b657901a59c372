package dpyr

import (
	"testing"

	errors "github.com/go-sif/dpyr/errors"
	"github.com/stretchr/testify/require"
)

func testRecords() *Records {
	return &Records{
		Columns: []string{"name", "age", "score"},
		Types:   []ColumnType{&StringColumnType{}, &Int64ColumnType{}, &Float64ColumnType{}},
		Rows: [][]interface{}{
			{"Alice", int64(25), 1.5},
			{"Bob", nil, 2.0},
		},
	}
}

func TestRecordsColumn(t *testing.T) {
	r := testRecords()
	require.Equal(t, 2, r.NumRows())
	require.Equal(t, 3, r.NumColumns())
	ages, err := r.Column("age")
	require.NoError(t, err)
	require.Equal(t, []interface{}{int64(25), nil}, ages)

	_, err = r.Column("height")
	var missing errors.MissingColumnError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Column height does not exist", err.Error())
}

func TestRecordsStrings(t *testing.T) {
	r := testRecords()
	require.Equal(t, [][]string{
		{"Alice", "25", "1.5"},
		{"Bob", "null", "2"},
	}, r.Strings())
	require.Equal(t, []string{"str", "i64", "f64"}, r.TypeNames())
}

func TestRecordsFingerprint(t *testing.T) {
	require.Equal(t, testRecords().Fingerprint(), testRecords().Fingerprint())

	changed := testRecords()
	changed.Rows[1][1] = int64(30)
	require.NotEqual(t, testRecords().Fingerprint(), changed.Fingerprint())

	renamed := testRecords()
	renamed.Columns[0] = "first_name"
	require.NotEqual(t, testRecords().Fingerprint(), renamed.Fingerprint())

	// an int64 and a float64 with the same printed value differ
	typed := testRecords()
	typed.Rows[0][1] = float64(25)
	require.NotEqual(t, testRecords().Fingerprint(), typed.Fingerprint())
}
