// Package util provides DataFrameOperations which observe a DataFrame without
// transforming it
package util
