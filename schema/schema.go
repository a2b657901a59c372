package schema

import (
	"fmt"
	"reflect"

	"github.com/go-sif/dpyr"
	errors "github.com/go-sif/dpyr/errors"
)

// column is a named, typed entry of a Schema
type column struct {
	name    string
	colType dpyr.ColumnType
}

// Schema is an ordered mapping from column names to ColumnTypes
type schema struct {
	columns []column
	index   map[string]int
}

// CreateSchema is a factory for Schemas
func CreateSchema() dpyr.Schema {
	return &schema{
		columns: []column{},
		index:   make(map[string]int),
	}
}

// Equals returns nil iff this and another Schema have the same columns, of the same types, in the same order
func (s *schema) Equals(otherSchema dpyr.Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	otherNames := otherSchema.ColumnNames()
	otherTypes := otherSchema.ColumnTypes()
	for i, col := range s.columns {
		if col.name != otherNames[i] {
			return fmt.Errorf("Column %d is named %s in one Schema and %s in the other", i, col.name, otherNames[i])
		}
		if reflect.TypeOf(col.colType) != reflect.TypeOf(otherTypes[i]) {
			return fmt.Errorf("Column %s types do not match", col.name)
		}
		if col.colType.Name() != otherTypes[i].Name() {
			return fmt.Errorf("Column %s type fields do not match", col.name)
		}
	}
	return nil
}

// Clone returns a copy of this Schema
func (s *schema) Clone() dpyr.Schema {
	columns := make([]column, len(s.columns))
	copy(columns, s.columns)
	index := make(map[string]int, len(s.index))
	for k, v := range s.index {
		index[k] = v
	}
	return &schema{columns: columns, index: index}
}

// NumColumns returns the number of columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.columns)
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, ok := s.index[colName]
	return ok
}

// GetColumnType returns the type of a particular column
func (s *schema) GetColumnType(colName string) (dpyr.ColumnType, error) {
	idx, ok := s.index[colName]
	if !ok {
		return nil, errors.MissingColumnError{Name: colName}
	}
	return s.columns[idx].colType, nil
}

// CreateColumn appends a new column to the Schema
func (s *schema) CreateColumn(colName string, columnType dpyr.ColumnType) (newSchema dpyr.Schema, err error) {
	if _, ok := s.index[colName]; ok {
		return nil, errors.DuplicateColumnError{Name: colName}
	}
	if columnType == nil {
		return nil, fmt.Errorf("Column %s must have a type", colName)
	}
	s.index[colName] = len(s.columns)
	s.columns = append(s.columns, column{name: colName, colType: columnType})
	return s, nil
}

// RenameColumn renames a column within the Schema, keeping its position
func (s *schema) RenameColumn(oldName string, newName string) (newSchema dpyr.Schema, err error) {
	idx, ok := s.index[oldName]
	if !ok {
		return nil, errors.MissingColumnError{Name: oldName}
	}
	if oldName == newName {
		return s, nil
	}
	if _, taken := s.index[newName]; taken {
		return nil, errors.DuplicateColumnError{Name: newName}
	}
	delete(s.index, oldName)
	s.index[newName] = idx
	s.columns[idx].name = newName
	return s, nil
}

// ColumnNames returns the names in the schema, in index order
func (s *schema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.name
	}
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *schema) ColumnTypes() []dpyr.ColumnType {
	types := make([]dpyr.ColumnType, len(s.columns))
	for i, col := range s.columns {
		types[i] = col.colType
	}
	return types
}
