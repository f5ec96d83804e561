package concurrent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelMap applies mapFn to every element of in using at most workers
// goroutines and returns the results in input order. A workers value of zero
// or less means GOMAXPROCS. If ctx is cancelled before all elements are
// mapped, ParallelMap returns ctx.Err().
func ParallelMap[T any, R any](ctx context.Context, in []T, workers int, mapFn func(T) R) ([]R, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]R, len(in))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for idx, val := range in {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			out[idx] = mapFn(val)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
