package duckdb

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-sif/dpyr/expr"
)

var binaryOperators = map[expr.Operator]string{
	expr.Eq:  "=",
	expr.Ne:  "<>",
	expr.Gt:  ">",
	expr.Ge:  ">=",
	expr.Lt:  "<",
	expr.Le:  "<=",
	expr.And: "AND",
	expr.Or:  "OR",
	expr.Add: "+",
	expr.Sub: "-",
	expr.Mul: "*",
	expr.Div: "/",
	expr.Mod: "%",
}

// functions maps expression function names onto DuckDB functions
var functions = map[string]string{
	"sum":    "sum",
	"mean":   "avg",
	"min":    "min",
	"max":    "max",
	"count":  "count",
	"abs":    "abs",
	"upper":  "upper",
	"lower":  "lower",
	"strlen": "length",
	"round":  "round",
}

// aggregates are the functions which reduce their operands to a single value
var aggregates = map[string]bool{
	"sum":   true,
	"mean":  true,
	"min":   true,
	"max":   true,
	"count": true,
	"len":   true,
}

// quoteIdent quotes a column or table name, so that any name (including those
// containing spaces, dots or quotes) can be referenced
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// compile translates an Expr into a DuckDB scalar expression. Aliases are ignored.
func compile(e expr.Expr) (string, error) {
	return compileExpr(e, false)
}

// compileOver compiles an Expr evaluated row by row, in which every aggregate is
// computed over the whole table and repeated on each row
func compileOver(e expr.Expr) (string, error) {
	return compileExpr(e, true)
}

// hasAggregate returns true iff e calls an aggregate function
func hasAggregate(e expr.Expr) bool {
	if e.Kind() == expr.FunctionKind && aggregates[e.Name()] {
		return true
	}
	for _, arg := range e.Args() {
		if hasAggregate(arg) {
			return true
		}
	}
	return false
}

func compileExpr(e expr.Expr, over bool) (string, error) {
	switch e.Kind() {
	case expr.ColumnKind:
		return quoteIdent(e.Name()), nil
	case expr.LiteralKind:
		return literal(e.Value())
	case expr.SQLKind:
		return "(" + e.Name() + ")", nil
	case expr.AliasKind:
		return compileExpr(e.Unaliased(), over)
	case expr.BinaryKind:
		op, ok := binaryOperators[e.Op()]
		if !ok {
			return "", fmt.Errorf("unsupported binary operator %s", e.Op())
		}
		args := e.Args()
		left, err := compileExpr(args[0], over)
		if err != nil {
			return "", err
		}
		right, err := compileExpr(args[1], over)
		if err != nil {
			return "", err
		}
		return "(" + left + " " + op + " " + right + ")", nil
	case expr.UnaryKind:
		operand, err := compileExpr(e.Args()[0], over)
		if err != nil {
			return "", err
		}
		switch e.Op() {
		case expr.Not:
			return "(NOT " + operand + ")", nil
		case expr.Neg:
			return "(-" + operand + ")", nil
		case expr.IsNull:
			return "(" + operand + " IS NULL)", nil
		case expr.IsNotNull:
			return "(" + operand + " IS NOT NULL)", nil
		}
		return "", fmt.Errorf("unsupported unary operator %s", e.Op())
	case expr.FunctionKind:
		call, err := compileCall(e, over)
		if err != nil {
			return "", err
		}
		if over && aggregates[e.Name()] {
			call += " OVER ()"
		}
		return call, nil
	}
	return "", fmt.Errorf("unsupported expression %s", e)
}

func compileCall(e expr.Expr, over bool) (string, error) {
	if e.Name() == "len" {
		return "count(*)", nil
	}
	fn, ok := functions[e.Name()]
	if !ok {
		return "", fmt.Errorf("unsupported function %s", e.Name())
	}
	args := e.Args()
	compiled := make([]string, len(args))
	for i, arg := range args {
		c, err := compileExpr(arg, over)
		if err != nil {
			return "", err
		}
		compiled[i] = c
	}
	return fn + "(" + strings.Join(compiled, ", ") + ")", nil
}

// projection compiles an Expr as an item of a select list, named by its OutputName
func projection(e expr.Expr) (string, error) {
	name := e.OutputName()
	inner := e.Unaliased()
	if inner.Kind() == expr.ColumnKind && inner.Name() == name {
		return quoteIdent(name), nil
	}
	compiled, err := compile(inner)
	if err != nil {
		return "", err
	}
	return compiled + " AS " + quoteIdent(name), nil
}

func literal(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "NULL", nil
	case bool:
		if x {
			return "TRUE", nil
		}
		return "FALSE", nil
	case int:
		return strconv.FormatInt(int64(x), 10), nil
	case int8:
		return strconv.FormatInt(int64(x), 10), nil
	case int16:
		return strconv.FormatInt(int64(x), 10), nil
	case int32:
		return strconv.FormatInt(int64(x), 10), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(x), 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float32:
		return floatLiteral(float64(x)), nil
	case float64:
		return floatLiteral(x), nil
	case string:
		return quoteString(x), nil
	case time.Time:
		return "TIMESTAMP " + quoteString(x.UTC().Format("2006-01-02 15:04:05.999999")), nil
	}
	return "", fmt.Errorf("unsupported literal %v of type %T", v, v)
}

func floatLiteral(f float64) string {
	switch {
	case math.IsNaN(f):
		return "CAST('nan' AS DOUBLE)"
	case math.IsInf(f, 1):
		return "CAST('inf' AS DOUBLE)"
	case math.IsInf(f, -1):
		return "CAST('-inf' AS DOUBLE)"
	}
	return "CAST(" + strconv.FormatFloat(f, 'g', -1, 64) + " AS DOUBLE)"
}
