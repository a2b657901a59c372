// Package dsv creates DataFrames from delimiter-separated files on disk, such as
// CSV or TSV files. Files are read by the Engine itself.
package dsv
