package diskload

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Run launches one worker per (path, worker-index) pair across the
// cross-product of paths and workersPerPath, and waits for all of them.
// Workers hand their Result to report as they finish; report may be called
// concurrently and must be safe for that.
//
// Failure policy is fail-fast: the first worker error cancels the group
// context, sibling workers stop at their next iteration boundary, and the
// error is returned to the caller.
func Run(ctx context.Context, paths []string, workersPerPath int, opts Options, report func(Result)) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, path := range paths {
		for i := 0; i < workersPerPath; i++ {
			w := Worker{Path: path, Index: i}
			g.Go(func() error {
				res, err := w.Run(ctx, opts)
				if err != nil {
					return fmt.Errorf("i/o worker %d on %s: %w", w.Index, w.Path, err)
				}
				if report != nil {
					report(res)
				}
				return nil
			})
		}
	}

	return g.Wait()
}
