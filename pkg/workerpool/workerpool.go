// Package workerpool fans a slice of work items out over a bounded number of goroutines.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process calls fn for every item with at most workers calls in flight. The first error
// cancels the context handed to the remaining calls and is returned. Items not yet
// started when that happens are skipped.
//
// With workers <= 1 the items are handled in slice order on the calling goroutine.
func Process[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if workers <= 1 {
		return inOrder(ctx, items, fn)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func inOrder[T any](ctx context.Context, items []T, fn func(context.Context, T) error) error {
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
