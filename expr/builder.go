package expr

// Lift turns an operand into an Expr. Exprs are returned as they are; anything
// else (including strings) becomes a literal.
func Lift(v interface{}) Expr {
	switch x := v.(type) {
	case Expr:
		return x
	case *Expr:
		if x != nil {
			return *x
		}
		return Lit(nil)
	}
	return Lit(v)
}

func (e Expr) binary(op Operator, other interface{}) Expr {
	return Expr{kind: BinaryKind, op: op, args: []Expr{e, Lift(other)}}
}

func (e Expr) unary(op Operator) Expr {
	return Expr{kind: UnaryKind, op: op, args: []Expr{e}}
}

func (e Expr) call(fn string, extra ...interface{}) Expr {
	args := []Expr{e}
	for _, x := range extra {
		args = append(args, Lift(x))
	}
	return Expr{kind: FunctionKind, name: fn, args: args}
}

// Eq tests equality
func (e Expr) Eq(other interface{}) Expr { return e.binary(Eq, other) }

// Ne tests inequality
func (e Expr) Ne(other interface{}) Expr { return e.binary(Ne, other) }

// Gt tests e > other
func (e Expr) Gt(other interface{}) Expr { return e.binary(Gt, other) }

// Ge tests e >= other
func (e Expr) Ge(other interface{}) Expr { return e.binary(Ge, other) }

// Lt tests e < other
func (e Expr) Lt(other interface{}) Expr { return e.binary(Lt, other) }

// Le tests e <= other
func (e Expr) Le(other interface{}) Expr { return e.binary(Le, other) }

// And is the logical conjunction of two predicates
func (e Expr) And(other interface{}) Expr { return e.binary(And, other) }

// Or is the logical disjunction of two predicates
func (e Expr) Or(other interface{}) Expr { return e.binary(Or, other) }

// Add adds other to e
func (e Expr) Add(other interface{}) Expr { return e.binary(Add, other) }

// Sub subtracts other from e
func (e Expr) Sub(other interface{}) Expr { return e.binary(Sub, other) }

// Mul multiplies e by other
func (e Expr) Mul(other interface{}) Expr { return e.binary(Mul, other) }

// Div divides e by other
func (e Expr) Div(other interface{}) Expr { return e.binary(Div, other) }

// Mod is the remainder of e divided by other
func (e Expr) Mod(other interface{}) Expr { return e.binary(Mod, other) }

// Not negates a predicate
func (e Expr) Not() Expr { return e.unary(Not) }

// Neg negates a number
func (e Expr) Neg() Expr { return e.unary(Neg) }

// IsNull tests for missing values
func (e Expr) IsNull() Expr { return e.unary(IsNull) }

// IsNotNull tests for present values
func (e Expr) IsNotNull() Expr { return e.unary(IsNotNull) }

// Alias names the output of e
func (e Expr) Alias(name string) Expr {
	return Expr{kind: AliasKind, name: name, args: []Expr{e}}
}

// Sum aggregates e by addition
func (e Expr) Sum() Expr { return e.call("sum") }

// Mean aggregates e by its arithmetic mean
func (e Expr) Mean() Expr { return e.call("mean") }

// Min aggregates e by its smallest value
func (e Expr) Min() Expr { return e.call("min") }

// Max aggregates e by its largest value
func (e Expr) Max() Expr { return e.call("max") }

// Count aggregates e by counting its non-null values
func (e Expr) Count() Expr { return e.call("count") }

// Abs is the absolute value of e
func (e Expr) Abs() Expr { return e.call("abs") }

// Upper converts a string to upper case
func (e Expr) Upper() Expr { return e.call("upper") }

// Lower converts a string to lower case
func (e Expr) Lower() Expr { return e.call("lower") }

// StrLen is the length of a string in characters
func (e Expr) StrLen() Expr { return e.call("strlen") }

// Round rounds e to a number of decimal places
func (e Expr) Round(decimals int) Expr { return e.call("round", decimals) }
