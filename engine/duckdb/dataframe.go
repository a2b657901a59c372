package duckdb

import (
	"sync"

	"github.com/go-sif/dpyr"
	errors "github.com/go-sif/dpyr/errors"
	"github.com/go-sif/dpyr/internal/stats"
	"go.uber.org/zap"
)

var errForeignFrame = errors.ForeignFrameError{}

func releasedFrameError(table string) error {
	return errors.ReleasedFrameError{Table: table}
}

// dataFrame is a DataFrame backed by a DuckDB table
type dataFrame struct {
	engine   *Engine
	table    string
	schema   dpyr.Schema
	lock     sync.Mutex
	released bool
}

// GetSchema returns a copy of the Schema of this DataFrame
func (df *dataFrame) GetSchema() dpyr.Schema {
	return df.schema.Clone()
}

// GetEngine returns the Engine holding this DataFrame
func (df *dataFrame) GetEngine() dpyr.Engine {
	return df.engine
}

// To applies operations to this DataFrame, logging each step and recording
// statistics which are available from the Engine afterwards
func (df *dataFrame) To(ops ...*dpyr.DataFrameOperation) (dpyr.DataFrame, error) {
	logger := df.engine.logger
	rs := &stats.RunStatistics{}
	rs.Start()
	result, err := dpyr.Chain(df, ops, func(step int, op *dpyr.DataFrameOperation, result dpyr.DataFrame) {
		rs.EndStep(step, op, result)
		fields := []zap.Field{zap.Int("step", step), zap.String("task", string(op.TaskType))}
		if s := result.GetSchema(); s != nil {
			fields = append(fields, zap.Strings("columns", s.ColumnNames()))
		}
		logger.Debug("applied operation", fields...)
	})
	rs.Finish()
	df.engine.setLastRunStatistics(rs)
	logger.Debug("applied operations",
		zap.Int("completed", rs.GetNumSteps()),
		zap.Int("requested", len(ops)),
		zap.Duration("runtime", rs.GetRuntime()))
	return result, err
}

// Collect materializes the rows of this DataFrame
func (df *dataFrame) Collect() (*dpyr.Records, error) {
	return df.engine.Collect(df)
}

// Release drops the table backing this DataFrame
func (df *dataFrame) Release() error {
	return df.engine.Release(df)
}

func (df *dataFrame) isReleased() bool {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.released
}

// markReleased returns false if this DataFrame was already released
func (df *dataFrame) markReleased() bool {
	df.lock.Lock()
	defer df.lock.Unlock()
	if df.released {
		return false
	}
	df.released = true
	return true
}
