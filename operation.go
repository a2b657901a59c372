package dpyr

import "fmt"

// DataFrameOperation is a deferred, parameterized transformation. It captures its
// arguments when it is built and does nothing until Do is invoked with a DataFrame,
// returning the DataFrame produced by the Engine.
type DataFrameOperation struct {
	TaskType TaskType
	Do       func(df DataFrame) (DataFrame, error)
}

// StepObserver is notified of every operation successfully applied by Chain
type StepObserver func(step int, op *DataFrameOperation, result DataFrame)

// Pipe threads a DataFrame through a sequence of operations, left to right.
// It is equivalent to df.To(ops...).
func Pipe(df DataFrame, ops ...*DataFrameOperation) (DataFrame, error) {
	return df.To(ops...)
}

// Chain applies ops to df in order, handing the result of each operation to the
// next. Engines use Chain to implement DataFrame.To.
//
// DataFrames produced by one step and consumed by the next are released as soon
// as they are no longer needed. The input DataFrame and the final result are never
// released, nor is a DataFrame which an operation passes through unchanged.
// Errors returned by an operation are returned as they are.
func Chain(df DataFrame, ops []*DataFrameOperation, observe StepObserver) (DataFrame, error) {
	if df == nil {
		return nil, fmt.Errorf("cannot apply operations to a nil DataFrame")
	}
	current := df
	owned := false // true iff current was produced by this chain
	for i, op := range ops {
		if op == nil || op.Do == nil {
			discard(current, owned)
			return nil, fmt.Errorf("operation %d is nil", i)
		}
		next, err := op.Do(current)
		if err != nil {
			discard(current, owned)
			return nil, err
		}
		if next == nil {
			discard(current, owned)
			return nil, fmt.Errorf("operation %d (%s) produced no DataFrame", i, op.TaskType)
		}
		if observe != nil {
			observe(i, op, next)
		}
		if next != current {
			if owned {
				if err := current.Release(); err != nil {
					discard(next, true)
					return nil, fmt.Errorf("failed to release intermediate DataFrame after %s: %w", op.TaskType, err)
				}
			}
			current = next
			owned = true
		}
	}
	return current, nil
}

// discard releases an intermediate DataFrame on a failure path. The failure being
// reported takes precedence over any error from the release.
func discard(df DataFrame, owned bool) {
	if owned {
		_ = df.Release()
	}
}
