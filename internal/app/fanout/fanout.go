// Package fanout runs a function across a slice of items with bounded
// concurrency, preserving input order in the results. The bulk CLI commands
// use it to toggle or delete several todos at once.
package fanout

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultWorkers is used when Run is given a non-positive worker count.
const DefaultWorkers = 4

// Result pairs an input item with its outcome. Either Value is populated or
// Err is non-nil.
type Result[T, R any] struct {
	Item  T
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent calls.
// Results are returned in input order, and one failure never stops the
// others.
//
// Items still waiting for a slot when ctx is canceled record ctx.Err()
// without calling fn. Calls already running finish; fn should honor ctx
// itself. Run blocks until every item has a result. An empty input yields
// an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[T, R] {
	results := make([]Result[T, R], len(items))
	if len(items) == 0 {
		return results
	}

	if maxWorkers <= 0 {
		maxWorkers = DefaultWorkers
	}
	sem := semaphore.NewWeighted(int64(maxWorkers))

	var wg sync.WaitGroup
	for i, item := range items {
		results[i].Item = item

		wg.Go(func() {
			if err := sem.Acquire(ctx, 1); err != nil {
				results[i].Err = err
				return
			}
			defer sem.Release(1)

			// Acquire can win the race against a canceled ctx.
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return
			}

			results[i].Value, results[i].Err = fn(ctx, item)
		})
	}

	wg.Wait()
	return results
}

// Failed returns the results that carry an error.
func Failed[T, R any](results []Result[T, R]) []Result[T, R] {
	var out []Result[T, R]
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
