package dpyr

// Schema is an ordered mapping from column names to ColumnTypes. It allows one
// to look up column types by name, define new columns and rename columns.
// Modifications apply in place; Clone a Schema before deriving a new one.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	NumColumns() int
	HasColumn(colName string) bool
	GetColumnType(colName string) (ColumnType, error)
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	ColumnNames() []string
	ColumnTypes() []ColumnType
}
