// Package expr builds lazy column expressions. An Expr is an immutable tree which
// is never evaluated by dpyr itself: engines compile it into their own dialect when
// an operation is applied to a DataFrame.
//
//	expr.Col("a").Gt(1).And(expr.C("test__col").IsNotNull())
package expr

import "strings"

// Kind identifies the shape of an Expr node
type Kind int

const (
	// ColumnKind is a reference to a named column
	ColumnKind Kind = iota
	// LiteralKind is a constant value
	LiteralKind
	// BinaryKind applies an Operator to two operands
	BinaryKind
	// UnaryKind applies an Operator to a single operand
	UnaryKind
	// AliasKind names the output of its operand
	AliasKind
	// FunctionKind calls a named function on its operands
	FunctionKind
	// SQLKind is a raw fragment handed verbatim to the engine
	SQLKind
)

// Operator names a binary or unary operation
type Operator string

const (
	Eq        Operator = "=="
	Ne        Operator = "!="
	Gt        Operator = ">"
	Ge        Operator = ">="
	Lt        Operator = "<"
	Le        Operator = "<="
	And       Operator = "&"
	Or        Operator = "|"
	Add       Operator = "+"
	Sub       Operator = "-"
	Mul       Operator = "*"
	Div       Operator = "/"
	Mod       Operator = "%"
	Not       Operator = "not"
	Neg       Operator = "neg"
	IsNull    Operator = "is_null"
	IsNotNull Operator = "is_not_null"
)

// Expr is a lazy expression over the columns of a DataFrame
type Expr struct {
	kind  Kind
	name  string // column name, alias, function name or raw fragment
	op    Operator
	value interface{}
	args  []Expr
}

// Col references a column by its literal name
func Col(name string) Expr {
	return Expr{kind: ColumnKind, name: name}
}

// C references a column using an identifier-style token, in which every
// doubled underscore stands for a space: C("test__col") is Col("test col")
func C(token string) Expr {
	return Col(strings.ReplaceAll(token, "__", " "))
}

// Lit wraps a constant value
func Lit(value interface{}) Expr {
	return Expr{kind: LiteralKind, value: value}
}

// SQL wraps a raw engine fragment, such as "price * 1.2", which the engine
// resolves on its own. Raw fragments reference no known columns.
func SQL(fragment string) Expr {
	return Expr{kind: SQLKind, name: fragment}
}

// Len counts the rows of a DataFrame, or of a group
func Len() Expr {
	return Expr{kind: FunctionKind, name: "len"}
}

// Kind returns the shape of this Expr
func (e Expr) Kind() Kind {
	return e.kind
}

// Name returns the column name, alias, function name or raw fragment of this Expr, depending on its Kind
func (e Expr) Name() string {
	return e.name
}

// Op returns the Operator of a binary or unary Expr
func (e Expr) Op() Operator {
	return e.op
}

// Value returns the constant of a literal Expr
func (e Expr) Value() interface{} {
	return e.value
}

// Args returns the operands of this Expr
func (e Expr) Args() []Expr {
	args := make([]Expr, len(e.args))
	copy(args, e.args)
	return args
}

// Unaliased strips any aliases wrapping this Expr
func (e Expr) Unaliased() Expr {
	for e.kind == AliasKind {
		e = e.args[0]
	}
	return e
}
