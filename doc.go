// Package dpyr contains the core components of dpyr, a dplyr-style grammar for
// composing transformations of tabular data as a left-to-right chain of deferred
// operations:
//
//	result, err := frame.To(
//		transform.Filter(expr.Col("a").Gt(1)),
//		transform.Mutate(transform.Named("c", expr.Col("a").Add(expr.Col("b")))),
//		transform.Arrange(transform.Desc("c")),
//		transform.Head(10),
//	)
//
// dpyr does not process data itself. Every operation delegates to a primitive of an
// Engine (see the engine/duckdb package), and every expression is compiled and
// evaluated by that Engine. This root package defines the types which are used
// during the regular use of dpyr, as well as in its extension with new operations
// or engines.
package dpyr
