// Package api
// Author: momentics
//
// Executor contract for parallel task dispatch. Implemented by the
// per-request row-partition thread pool that runs a filter's row range on
// each of its goroutines.

package api

import "fmt"

// ErrExecutorClosed is returned by Submit once an executor has stopped
// accepting new work.
var ErrExecutorClosed = fmt.Errorf("executor closed")

// Executor abstracts parallel task and custom eventloop execution.
type Executor interface {
    // Submit schedules task for execution.
    Submit(task func()) error

    // NumWorkers returns current number of active worker routines.
    NumWorkers() int

    // Resize adjusts the concurrency at runtime.
    Resize(newCount int)
}
