package stats

import (
	"sync"
	"time"

	"github.com/go-sif/dpyr"
)

// RunStatistics contains statistics about a running pipe
type RunStatistics struct {
	lock         sync.Mutex
	started      bool
	finished     bool
	startTime    time.Time
	totalRuntime time.Duration
	lastStepEnd  time.Time
	taskTypes    []dpyr.TaskType
	stepRuntimes []time.Duration
	stepWidths   []int
}

var _ dpyr.RuntimeStatistics = (*RunStatistics)(nil)

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
		rs.lastStepEnd = rs.startTime
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.started && !rs.finished {
		rs.finished = true
		rs.totalRuntime = time.Since(rs.startTime)
	}
}

// EndStep tracks the completion of an operation. It is a dpyr.StepObserver.
func (rs *RunStatistics) EndStep(step int, op *dpyr.DataFrameOperation, result dpyr.DataFrame) {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	now := time.Now()
	rs.taskTypes = append(rs.taskTypes, op.TaskType)
	rs.stepRuntimes = append(rs.stepRuntimes, now.Sub(rs.lastStepEnd))
	width := 0
	if s := result.GetSchema(); s != nil {
		width = s.NumColumns()
	}
	rs.stepWidths = append(rs.stepWidths, width)
	rs.lastStepEnd = now
}

// GetStartTime returns the start time of the pipe
func (rs *RunStatistics) GetStartTime() time.Time {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return rs.startTime
}

// GetRuntime returns the running time of the pipe
func (rs *RunStatistics) GetRuntime() time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	if rs.finished || !rs.started {
		return rs.totalRuntime
	}
	return time.Since(rs.startTime)
}

// GetNumSteps returns the number of operations which have completed
func (rs *RunStatistics) GetNumSteps() int {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return len(rs.taskTypes)
}

// GetStepTaskTypes returns the TaskType of every completed operation
func (rs *RunStatistics) GetStepTaskTypes() []dpyr.TaskType {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return append([]dpyr.TaskType(nil), rs.taskTypes...)
}

// GetStepRuntimes returns the runtime of every completed operation
func (rs *RunStatistics) GetStepRuntimes() []time.Duration {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return append([]time.Duration(nil), rs.stepRuntimes...)
}

// GetStepWidths returns the number of columns produced by every completed operation
func (rs *RunStatistics) GetStepWidths() []int {
	rs.lock.Lock()
	defer rs.lock.Unlock()
	return append([]int(nil), rs.stepWidths...)
}
