// Package workers provides bounded parallel execution of indexed tasks.
// It defines the Worker interface and a Pool implementation backed by an
// errgroup with a concurrency limit.
package workers

import "context"

// Task processes the element at index. A Task must write its result to a
// slot owned by index so that results can be merged by position.
type Task func(ctx context.Context, index int) error

// Worker is the interface that must be implemented by any task runner.
// It defines a single Run method that executes task once for every index
// in [0, n).
//
// Implementations block until every task has returned. The first task
// error cancels the context of the remaining tasks and is returned.
//
// Example usage:
//
//	results := make([]string, len(inputs))
//	err := w.Run(ctx, len(inputs), func(ctx context.Context, i int) error {
//	    results[i] = strings.ToUpper(inputs[i])
//	    return nil
//	})
type Worker interface {
	Run(ctx context.Context, n int, task Task) error
}
