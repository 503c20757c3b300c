// Package parallel provides bounded parallel execution helpers.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NumWorkers returns the default number of workers for parallel operations.
func NumWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// For executes fn for indices [start, end) using at most n workers. The first
// error cancels the context passed to the remaining calls and is returned.
func For(ctx context.Context, start, end, n int, fn func(ctx context.Context, i int) error) error {
	if n <= 1 {
		for i := start; i < end; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n)
	for i := start; i < end; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(ctx, i)
		})
	}
	return g.Wait()
}

// ForChunked executes fn for chunks of indices using at most n workers.
// fn receives (chunkStart, chunkEnd) for each chunk.
func ForChunked(ctx context.Context, start, end, chunkSize, n int, fn func(ctx context.Context, chunkStart, chunkEnd int) error) error {
	if chunkSize <= 0 {
		chunkSize = end - start
	}
	if chunkSize <= 0 {
		return nil
	}
	chunks := (end - start + chunkSize - 1) / chunkSize
	return For(ctx, 0, chunks, n, func(ctx context.Context, c int) error {
		s := start + c*chunkSize
		e := min(s+chunkSize, end)
		return fn(ctx, s, e)
	})
}
