package dpyr

// TaskType describes the type of a DataFrameOperation, used for logging and introspection
type TaskType string

const (
	// ExtractTaskType indicates that this task sources data from outside the Engine
	ExtractTaskType TaskType = "extract"
	// SelectTaskType indicates a projection
	SelectTaskType TaskType = "select"
	// FilterTaskType indicates a row predicate
	FilterTaskType TaskType = "filter"
	// MutateTaskType indicates the derivation of columns
	MutateTaskType TaskType = "mutate"
	// ArrangeTaskType indicates a sort
	ArrangeTaskType TaskType = "arrange"
	// HeadTaskType indicates a row limit
	HeadTaskType TaskType = "head"
	// DistinctTaskType indicates deduplication
	DistinctTaskType TaskType = "distinct"
	// RenameTaskType indicates the renaming of columns
	RenameTaskType TaskType = "rename"
	// CountTaskType indicates a grouped count
	CountTaskType TaskType = "count"
	// PreviewTaskType indicates a display passthrough, which does not manipulate data
	PreviewTaskType TaskType = "preview"
)
