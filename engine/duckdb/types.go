package duckdb

import (
	"fmt"
	"strings"

	"github.com/go-sif/dpyr"
)

// columnType maps a DuckDB type name onto a dpyr ColumnType
func columnType(engineType string) dpyr.ColumnType {
	switch strings.ToUpper(engineType) {
	case "BOOLEAN":
		return &dpyr.BoolColumnType{}
	case "TINYINT", "SMALLINT", "INTEGER", "BIGINT", "UTINYINT", "USMALLINT", "UINTEGER":
		return &dpyr.Int64ColumnType{}
	case "FLOAT", "DOUBLE":
		return &dpyr.Float64ColumnType{}
	case "VARCHAR":
		return &dpyr.StringColumnType{}
	case "TIMESTAMP", "TIMESTAMP_S", "TIMESTAMP_MS", "TIMESTAMP_NS", "TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE":
		return &dpyr.TimeColumnType{}
	case "DATE":
		return &dpyr.TimeColumnType{Format: "2006-01-02"}
	}
	return &dpyr.OtherColumnType{EngineType: engineType}
}

// engineType maps a dpyr ColumnType onto the DuckDB type used to store it
func engineType(colType dpyr.ColumnType) (string, error) {
	switch t := colType.(type) {
	case *dpyr.BoolColumnType:
		return "BOOLEAN", nil
	case *dpyr.Int64ColumnType:
		return "BIGINT", nil
	case *dpyr.Float64ColumnType:
		return "DOUBLE", nil
	case *dpyr.StringColumnType:
		return "VARCHAR", nil
	case *dpyr.TimeColumnType:
		return "TIMESTAMP", nil
	case *dpyr.OtherColumnType:
		return t.EngineType, nil
	}
	return "", fmt.Errorf("column type %T cannot be stored in DuckDB", colType)
}

// normalize widens scanned integers to int64 and floats to float64
func normalize(v interface{}) interface{} {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case float32:
		return float64(x)
	}
	return v
}
