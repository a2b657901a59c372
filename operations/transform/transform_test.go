package transform

import (
	"testing"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/datasource/memory"
	"github.com/go-sif/dpyr/engine/duckdb"
	errors "github.com/go-sif/dpyr/errors"
	"github.com/go-sif/dpyr/expr"
	"github.com/go-sif/dpyr/schema"
	"github.com/stretchr/testify/require"
)

func createTestFrame(t *testing.T) (*duckdb.Engine, dpyr.DataFrame) {
	eng, err := duckdb.Open(nil)
	require.Nil(t, err)
	t.Cleanup(func() { eng.Close() })

	s := schema.CreateSchema()
	s.CreateColumn("a", &dpyr.Int64ColumnType{})
	s.CreateColumn("b", &dpyr.Int64ColumnType{})
	s.CreateColumn("test col", &dpyr.StringColumnType{})
	df, err := memory.CreateDataFrame(eng, s, [][]interface{}{
		{1, 10, "x"},
		{2, 20, "y"},
		{2, 20, "y"},
		{3, 30, "x"},
	})
	require.Nil(t, err)
	return eng, df
}

func collect(t *testing.T, df dpyr.DataFrame) *dpyr.Records {
	records, err := df.Collect()
	require.Nil(t, err)
	return records
}

func column(t *testing.T, df dpyr.DataFrame, name string) []interface{} {
	values, err := collect(t, df).Column(name)
	require.Nil(t, err)
	return values
}

func TestSelectMatchesEngine(t *testing.T) {
	eng, df := createTestFrame(t)
	piped, err := df.To(Select(expr.Col("a")))
	require.Nil(t, err)
	direct, err := eng.Select(df, expr.Col("a"))
	require.Nil(t, err)
	require.Equal(t, collect(t, direct).Fingerprint(), collect(t, piped).Fingerprint())

	piped, err = dpyr.Pipe(df, Select("b", Named("doubled", expr.Col("a").Mul(2))))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "doubled"}, piped.GetSchema().ColumnNames())
	require.Equal(t, []interface{}{int64(2), int64(4), int64(4), int64(6)}, column(t, piped, "doubled"))

	_, err = df.To(Select(42))
	var invalid errors.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "select", invalid.Operation)
}

func TestAttributeStyleAccessor(t *testing.T) {
	_, df := createTestFrame(t)
	selected, err := df.To(Select(expr.C("test__col")))
	require.Nil(t, err)
	require.Equal(t, []string{"test col"}, selected.GetSchema().ColumnNames())
	require.Equal(t, []interface{}{"x", "y", "y", "x"}, column(t, selected, "test col"))
}

func TestFilterThenMutateMatchesEngine(t *testing.T) {
	eng, df := createTestFrame(t)
	piped, err := df.To(
		Filter(expr.Col("a").Gt(1)),
		Mutate(Named("c", expr.Col("a").Add(expr.Col("b")))),
	)
	require.Nil(t, err)

	filtered, err := eng.Filter(df, expr.Col("a").Gt(1))
	require.Nil(t, err)
	direct, err := eng.WithColumns(filtered, expr.Col("a").Add(expr.Col("b")).Alias("c"))
	require.Nil(t, err)

	require.Equal(t, collect(t, direct).Fingerprint(), collect(t, piped).Fingerprint())
	require.Equal(t, []string{"a", "b", "test col", "c"}, piped.GetSchema().ColumnNames())
	require.Equal(t, []interface{}{int64(22), int64(22), int64(33)}, column(t, piped, "c"))
	// the input DataFrame is untouched
	require.Equal(t, 4, collect(t, df).NumRows())
	require.Equal(t, []string{"a", "b", "test col"}, df.GetSchema().ColumnNames())
}

func TestMutate(t *testing.T) {
	_, df := createTestFrame(t)
	mutated, err := df.To(Mutate(
		Named("a", expr.Col("a").Neg()),
		Named("flag", true),
		Named("copy", "b"),
		expr.Col("b").Div(10).Alias("tens"),
	))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "test col", "flag", "copy", "tens"}, mutated.GetSchema().ColumnNames())
	records := collect(t, mutated)
	require.Equal(t, []interface{}{int64(-1), int64(10), "x", true, int64(10), 1.0}, records.Rows[0])
}

func TestMutateRepeatsAggregates(t *testing.T) {
	_, df := createTestFrame(t)
	mutated, err := df.To(Mutate(
		Named("total", expr.Col("b").Max()),
		Named("rows", expr.Len()),
		Named("share", expr.Col("b").Div(expr.Col("b").Sum())),
	))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "b", "test col", "total", "rows", "share"}, mutated.GetSchema().ColumnNames())
	require.Equal(t, []interface{}{int64(30), int64(30), int64(30), int64(30)}, column(t, mutated, "total"))
	require.Equal(t, []interface{}{int64(4), int64(4), int64(4), int64(4)}, column(t, mutated, "rows"))
	require.Equal(t, []interface{}{0.125, 0.25, 0.25, 0.375}, column(t, mutated, "share"))

	filtered, err := df.To(Filter(expr.Col("a").Eq(expr.Col("a").Max())))
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(3)}, column(t, filtered, "a"))
}

func TestArrange(t *testing.T) {
	_, df := createTestFrame(t)
	sorted, err := df.To(Arrange(Desc("a")))
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(3), int64(2), int64(2), int64(1)}, column(t, sorted, "a"))

	sorted, err = df.To(Arrange(expr.C("test__col"), Desc(expr.Col("b"))))
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(3), int64(1), int64(2), int64(2)}, column(t, sorted, "a"))

	_, err = df.To(Arrange(Desc(1.5)))
	require.NotNil(t, err)
}

func TestHead(t *testing.T) {
	_, df := createTestFrame(t)
	head, err := df.To(Arrange(Desc("a")), Head(2))
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(3), int64(2)}, column(t, head, "a"))

	head, err = df.To(Head(10))
	require.Nil(t, err)
	require.Equal(t, 4, collect(t, head).NumRows())

	_, err = df.To(Head(-1))
	require.NotNil(t, err)
}

func TestDistinct(t *testing.T) {
	_, df := createTestFrame(t)
	unique, err := df.To(Distinct())
	require.Nil(t, err)
	require.Equal(t, 3, collect(t, unique).NumRows())

	unique, err = df.To(Distinct(expr.C("test__col")), Arrange("test col"))
	require.Nil(t, err)
	require.Equal(t, []interface{}{"x", "y"}, column(t, unique, "test col"))

	// an expression referencing a single column twice still names that column
	unique, err = df.To(Distinct(expr.Col("a").Add(expr.Col("a"))))
	require.Nil(t, err)
	require.Equal(t, 3, collect(t, unique).NumRows())
}

func TestDistinctRejectsExpressions(t *testing.T) {
	_, df := createTestFrame(t)
	_, err := df.To(Distinct(expr.Col("a").Add(expr.Col("b"))))
	var ambiguous errors.AmbiguousExpressionError
	require.ErrorAs(t, err, &ambiguous)
	require.Equal(t, []string{"a", "b"}, ambiguous.Columns)
	require.Contains(t, err.Error(), "Expected column but got expression")

	_, err = df.To(Distinct(expr.Lit(1)))
	require.ErrorAs(t, err, &ambiguous)

	_, err = df.To(Distinct(3))
	var invalid errors.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
}

func TestRename(t *testing.T) {
	_, df := createTestFrame(t)
	renamed, err := df.To(Rename(Named("alpha", "a"), Named("label", expr.C("test__col"))))
	require.Nil(t, err)
	require.Equal(t, []string{"alpha", "b", "label"}, renamed.GetSchema().ColumnNames())

	selected, err := renamed.To(Select("alpha"))
	require.Nil(t, err)
	require.Equal(t, column(t, df, "a"), column(t, selected, "alpha"))

	// the last binding for a column wins
	renamed, err = df.To(Rename(Named("first", "b"), Named("second", "b")))
	require.Nil(t, err)
	require.Equal(t, []string{"a", "second", "test col"}, renamed.GetSchema().ColumnNames())
}

func TestRenameOntoExistingColumn(t *testing.T) {
	eng, df := createTestFrame(t)
	var duplicate errors.DuplicateColumnError

	_, err := df.To(Rename(Named("a", "b")))
	require.ErrorAs(t, err, &duplicate)
	require.Equal(t, "a", duplicate.Name)
	require.Contains(t, err.Error(), "Column a already exists")

	_, err = df.To(Select("a", "a"))
	require.ErrorAs(t, err, &duplicate)
	require.Equal(t, 1, eng.NumFrames())

	// names may be exchanged within a single rename
	swapped, err := df.To(Rename(Named("b", "a"), Named("a", "b")))
	require.Nil(t, err)
	require.Equal(t, []string{"b", "a", "test col"}, swapped.GetSchema().ColumnNames())
	require.Equal(t, column(t, df, "a"), column(t, swapped, "b"))
}

func TestRenameMissingColumn(t *testing.T) {
	_, df := createTestFrame(t)
	_, err := df.To(Rename(Named("new_col", "nonexistent_col")))
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "Column nonexistent_col does not exist")
	var missing errors.MissingColumnError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "nonexistent_col", missing.Name)

	_, err = df.To(Rename(Named("x", "missing_1"), Named("y", "a"), Named("z", expr.Col("missing_2"))))
	require.Contains(t, err.Error(), "missing_1")
	require.Contains(t, err.Error(), "missing_2")

	_, err = df.To(Rename(Named("sum", expr.Col("a").Add(expr.Col("b")))))
	var ambiguous errors.AmbiguousExpressionError
	require.ErrorAs(t, err, &ambiguous)
}

func TestCount(t *testing.T) {
	_, df := createTestFrame(t)
	counted, err := df.To(Count(expr.C("test__col")))
	require.Nil(t, err)
	records := collect(t, counted)
	require.Equal(t, []string{"test col", "n"}, records.Columns)
	require.Equal(t, [][]interface{}{{"x", int64(2)}, {"y", int64(2)}}, records.Rows)

	counted, err = df.To(Count())
	require.Nil(t, err)
	require.Equal(t, [][]interface{}{{int64(4)}}, collect(t, counted).Rows)

	counted, err = df.To(Count(Named("big", expr.Col("a").Ge(2))))
	require.Nil(t, err)
	require.Equal(t, [][]interface{}{{false, int64(1)}, {true, int64(3)}}, collect(t, counted).Rows)

	counted, err = df.To(Rename(Named("n", "a")), Count("n"))
	require.Nil(t, err)
	require.Equal(t, []string{"n", "nn"}, counted.GetSchema().ColumnNames())
}
