package expr

import (
	"fmt"
	"strings"
	"time"
)

// String renders e in an engine-independent form, e.g. (col("a") > 1)
func (e Expr) String() string {
	var b strings.Builder
	e.format(&b)
	return b.String()
}

func (e Expr) format(b *strings.Builder) {
	switch e.kind {
	case ColumnKind:
		fmt.Fprintf(b, "col(%q)", e.name)
	case LiteralKind:
		b.WriteString(formatLiteral(e.value))
	case BinaryKind:
		b.WriteString("(")
		e.args[0].format(b)
		fmt.Fprintf(b, " %s ", e.op)
		e.args[1].format(b)
		b.WriteString(")")
	case UnaryKind:
		switch e.op {
		case IsNull, IsNotNull:
			e.args[0].format(b)
			fmt.Fprintf(b, ".%s()", e.op)
		case Neg:
			b.WriteString("-(")
			e.args[0].format(b)
			b.WriteString(")")
		default:
			fmt.Fprintf(b, "%s(", e.op)
			e.args[0].format(b)
			b.WriteString(")")
		}
	case AliasKind:
		e.args[0].format(b)
		fmt.Fprintf(b, ".alias(%q)", e.name)
	case FunctionKind:
		b.WriteString(e.name)
		b.WriteString("(")
		for i, arg := range e.args {
			if i > 0 {
				b.WriteString(", ")
			}
			arg.format(b)
		}
		b.WriteString(")")
	case SQLKind:
		fmt.Fprintf(b, "sql(%q)", e.name)
	default:
		fmt.Fprintf(b, "<unknown expr kind %d>", e.kind)
	}
}

func formatLiteral(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprintf("%v", x)
	}
}
