package dpyr

import (
	"fmt"
	"strconv"
	"time"
)

// ColumnType is the logical type of a column. Engines map their own types onto
// ColumnTypes, falling back to OtherColumnType for types without a logical counterpart.
type ColumnType interface {
	Name() string                  // returns the name of this type
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name of a BoolColumnType
func (b *BoolColumnType) Name() string {
	return "bool"
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	if bv, ok := v.(bool); ok {
		return strconv.FormatBool(bv)
	}
	return fmt.Sprintf("%v", v)
}

// Int64ColumnType is a column type which stores an integer value
type Int64ColumnType struct{}

// Name of an Int64ColumnType
func (b *Int64ColumnType) Name() string {
	return "i64"
}

// ToString produces a string representation of a value of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%d", v)
}

// Float64ColumnType is a column type which stores a floating point value
type Float64ColumnType struct{}

// Name of a Float64ColumnType
func (b *Float64ColumnType) Name() string {
	return "f64"
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	if fv, ok := v.(float64); ok {
		return strconv.FormatFloat(fv, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// StringColumnType is a column type which stores a variable-length string value
type StringColumnType struct{}

// Name of a StringColumnType
func (b *StringColumnType) Name() string {
	return "str"
}

// ToString produces a string representation of a value of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%s", v)
}

// TimeColumnType is a column type which stores a time value
type TimeColumnType struct {
	Format string // format used by ToString. Defaults to time.RFC3339
}

// Name of a TimeColumnType
func (b *TimeColumnType) Name() string {
	return "datetime"
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	tv, ok := v.(time.Time)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	if len(b.Format) == 0 {
		return tv.Format(time.RFC3339)
	}
	return tv.Format(b.Format)
}

// OtherColumnType is a column type known only to the Engine, such as a decimal or a list
type OtherColumnType struct {
	EngineType string
}

// Name of an OtherColumnType is the Engine's own name for it
func (b *OtherColumnType) Name() string {
	return b.EngineType
}

// ToString produces a string representation of a value of an OtherColumnType value
func (b *OtherColumnType) ToString(v interface{}) string {
	if v == nil {
		return nilString
	}
	return fmt.Sprintf("%v", v)
}

const nilString = "null"
