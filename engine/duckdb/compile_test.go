package duckdb

import (
	"math"
	"testing"
	"time"

	"github.com/go-sif/dpyr/expr"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		in   expr.Expr
		want string
	}{
		{expr.Col("a").Gt(1).And(expr.C("test__col").IsNotNull()), `(("a" > 1) AND ("test col" IS NOT NULL))`},
		{expr.Col("a").Ne("it's"), `("a" <> 'it''s')`},
		{expr.Col("a").Mean().Alias("m"), `avg("a")`},
		{expr.Col("s").StrLen(), `length("s")`},
		{expr.Col("x").Round(2), `round("x", 2)`},
		{expr.Col("b").Not(), `(NOT "b")`},
		{expr.Col("b").Neg(), `(-"b")`},
		{expr.Len(), `count(*)`},
		{expr.SQL("a + b"), `(a + b)`},
		{expr.Col(`q"uote`), `"q""uote"`},
	}
	for _, c := range cases {
		got, err := compile(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, got, c.in.String())
	}
}

func TestCompileLiterals(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, "NULL"},
		{true, "TRUE"},
		{int32(-4), "-4"},
		{uint8(4), "4"},
		{2.5, "CAST(2.5 AS DOUBLE)"},
		{math.Inf(-1), "CAST('-inf' AS DOUBLE)"},
		{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), "TIMESTAMP '2020-01-02 03:04:05'"},
		{time.Date(2020, 1, 2, 5, 4, 5, 0, time.FixedZone("UTC+2", 2*60*60)), "TIMESTAMP '2020-01-02 03:04:05'"},
		{time.Date(2020, 1, 2, 3, 4, 5, 250000000, time.UTC), "TIMESTAMP '2020-01-02 03:04:05.25'"},
	}
	for _, c := range cases {
		got, err := literal(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
	_, err := literal(struct{}{})
	require.Error(t, err)
}

func TestCompileOverRepeatsAggregates(t *testing.T) {
	cases := []struct {
		in   expr.Expr
		want string
	}{
		{expr.Col("a").Sum(), `sum("a") OVER ()`},
		{expr.Len().Alias("rows"), `count(*) OVER ()`},
		{expr.Col("a").Sub(expr.Col("a").Mean()), `("a" - avg("a") OVER ())`},
		{expr.Col("a").Abs().Round(1), `round(abs("a"), 1)`},
	}
	for _, c := range cases {
		got, err := compileOver(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, got, c.in.String())
	}
	require.True(t, hasAggregate(expr.Col("a").Gt(expr.Col("a").Max())))
	require.False(t, hasAggregate(expr.Col("a").Abs().Gt(1)))
}

func TestProjectionNamesOutputs(t *testing.T) {
	item, err := projection(expr.Col("a"))
	require.NoError(t, err)
	require.Equal(t, `"a"`, item)

	item, err = projection(expr.Col("a").Alias("b"))
	require.NoError(t, err)
	require.Equal(t, `"a" AS "b"`, item)

	item, err = projection(expr.Col("a").Add(expr.Col("b")))
	require.NoError(t, err)
	require.Equal(t, `("a" + "b") AS "a"`, item)
}
