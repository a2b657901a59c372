package memory

import (
	"testing"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/engine/duckdb"
	"github.com/go-sif/dpyr/schema"
	"github.com/stretchr/testify/require"
)

func TestCreateDataFrame(t *testing.T) {
	eng, err := duckdb.Open(nil)
	require.Nil(t, err)
	defer eng.Close()

	s := schema.CreateSchema()
	s.CreateColumn("name", &dpyr.StringColumnType{})
	s.CreateColumn("score", &dpyr.Float64ColumnType{})
	df, err := CreateDataFrame(eng, s, [][]interface{}{{"ann", 1.5}, {"bob", nil}})
	require.Nil(t, err)

	records, err := df.Collect()
	require.Nil(t, err)
	require.Equal(t, [][]interface{}{{"ann", 1.5}, {"bob", nil}}, records.Rows)

	copied, err := CreateDataFrameFromRecords(eng, s, records)
	require.Nil(t, err)
	copiedRecords, err := copied.Collect()
	require.Nil(t, err)
	require.Equal(t, records.Fingerprint(), copiedRecords.Fingerprint())

	_, err = CreateDataFrame(nil, s, nil)
	require.NotNil(t, err)
}

func TestCreateDataFrameFromRecordsChecksSchema(t *testing.T) {
	eng, err := duckdb.Open(nil)
	require.Nil(t, err)
	defer eng.Close()

	s := schema.CreateSchema()
	s.CreateColumn("name", &dpyr.StringColumnType{})
	s.CreateColumn("score", &dpyr.Float64ColumnType{})
	records := &dpyr.Records{
		Columns: []string{"name", "score"},
		Types:   []dpyr.ColumnType{&dpyr.StringColumnType{}, &dpyr.Int64ColumnType{}},
		Rows:    [][]interface{}{{"ann", int64(1)}},
	}
	_, err = CreateDataFrameFromRecords(eng, s, records)
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Column score types do not match")

	records.Types[1] = &dpyr.Float64ColumnType{}
	records.Columns[1] = "points"
	_, err = CreateDataFrameFromRecords(eng, s, records)
	require.NotNil(t, err)

	_, err = CreateDataFrameFromRecords(eng, s, nil)
	require.NotNil(t, err)
	require.Equal(t, 0, eng.NumFrames())
}
