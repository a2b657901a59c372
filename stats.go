package dpyr

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about the application
// of a sequence of operations to a DataFrame
type RuntimeStatistics interface {
	// GetStartTime returns the time at which the first operation began
	GetStartTime() time.Time
	// GetRuntime returns the time spent applying operations so far
	GetRuntime() time.Duration
	// GetNumSteps returns the number of operations which have completed successfully
	GetNumSteps() int
	// GetStepTaskTypes returns the TaskType of every completed operation
	GetStepTaskTypes() []TaskType
	// GetStepRuntimes returns the runtime of every completed operation
	GetStepRuntimes() []time.Duration
	// GetStepWidths returns the number of columns produced by every completed operation
	GetStepWidths() []int
}
