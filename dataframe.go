package dpyr

// A DataFrame is an immutable table of named, ordered columns, held by an Engine.
// Applying operations to a DataFrame produces new DataFrames and never modifies
// the original.
type DataFrame interface {
	GetSchema() Schema                            // GetSchema returns the Schema of a DataFrame
	GetEngine() Engine                            // GetEngine returns the Engine which holds the data of a DataFrame
	To(...*DataFrameOperation) (DataFrame, error) // To is a "functional operations" factory method for DataFrames, chaining operations onto the current one.
	Collect() (*Records, error)                   // Collect materializes the rows of a DataFrame
	Release() error                               // Release frees the engine resources backing a DataFrame
}
