package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs tasks on at most limit goroutines.
type Pool struct {
	limit int
}

// NewPool returns a pool running at most limit tasks at once. A limit of
// zero or less means one task per available CPU.
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	return &Pool{limit: limit}
}

// Limit returns the maximum number of concurrently running tasks.
func (p *Pool) Limit() int {
	return p.limit
}

// Run implements [Worker]. Tasks are started in index order; no task is
// started once ctx is done.
func (p *Pool) Run(ctx context.Context, n int, task Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)

	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return task(gctx, i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
