package expr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccessorDoubledUnderscore(t *testing.T) {
	require.Equal(t, Col("test col").String(), C("test__col").String())
	require.Equal(t, "test col", C("test__col").Name())
	require.Equal(t, "a", C("a").Name())
	require.Equal(t, "a b c", C("a__b__c").Name())
}

func TestAccessorMatchesLiteralReferences(t *testing.T) {
	tests := []struct {
		native Expr
		access Expr
	}{
		{Col("a"), C("a")},
		{Col("a").Gt(1), C("a").Gt(1)},
		{Col("test col"), C("test__col")},
	}
	for _, tt := range tests {
		require.Equal(t, tt.native.String(), tt.access.String())
	}
}

func TestExprString(t *testing.T) {
	require.Equal(t, `col("a")`, Col("a").String())
	require.Equal(t, `(col("a") > 1)`, Col("a").Gt(1).String())
	require.Equal(t, `((col("a") + col("b")) * 2.5)`, Col("a").Add(Col("b")).Mul(2.5).String())
	require.Equal(t, `col("a").alias("x")`, Col("a").Alias("x").String())
	require.Equal(t, `col("s").is_null()`, Col("s").IsNull().String())
	require.Equal(t, `not((col("a") == "x"))`, Col("a").Eq("x").Not().String())
	require.Equal(t, `round(col("a"), 2)`, Col("a").Round(2).String())
	require.Equal(t, `len()`, Len().String())
	require.Equal(t, `sql("a > 1")`, SQL("a > 1").String())
	require.Equal(t, `(col("a") == null)`, Col("a").Eq(nil).String())
}

func TestExprIsImmutable(t *testing.T) {
	base := Col("a")
	gt := base.Gt(1)
	lt := base.Lt(5)
	require.Equal(t, ColumnKind, base.Kind())
	require.Equal(t, Gt, gt.Op())
	require.Equal(t, Lt, lt.Op())

	args := gt.Args()
	args[0] = Col("z")
	require.Equal(t, "a", gt.Args()[0].Name())
}

func TestLift(t *testing.T) {
	e := Col("a")
	require.Equal(t, e, Lift(e))
	require.Equal(t, e, Lift(&e))
	require.Equal(t, LiteralKind, Lift("a").Kind())
	require.Equal(t, 3, Lift(3).Value())
	var nilExpr *Expr
	require.Nil(t, Lift(nilExpr).Value())
}

func TestUnaliased(t *testing.T) {
	e := Col("a").Add(1).Alias("x").Alias("y")
	require.Equal(t, BinaryKind, e.Unaliased().Kind())
	require.Equal(t, "y", e.Name())
}
