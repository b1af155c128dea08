package solve

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"go.lepak.sg/treesearch/search"
)

// Outcome is the result of one strategy in Compare.
type Outcome[S, A any] struct {
	Strategy Strategy
	Result   *Result[S, A]
	// Err is the error returned by Search, if any.
	Err     error
	Elapsed time.Duration
}

// Compare runs Search for every strategy concurrently, each with its own
// frontier, and returns the outcomes in the order of strategies.
// p is shared between the goroutines, so its methods must be safe
// for concurrent use.
//
// A strategy that fails on its own (ErrNoSolution, ErrCutoff) is
// reported in its Outcome. If ctx is done, every remaining search stops
// and Compare returns the context's error along with the outcomes.
func Compare[S, A any](
	ctx context.Context, p search.Problem[S, A], strategies []Strategy, opts ...Option,
) ([]Outcome[S, A], error) {
	outcomes := make([]Outcome[S, A], len(strategies))
	g, gctx := errgroup.WithContext(ctx)

	for i, s := range strategies {
		i, s := i, s
		g.Go(func() error {
			start := time.Now()
			res, err := Search(gctx, s, p, opts...)
			outcomes[i] = Outcome[S, A]{
				Strategy: s,
				Result:   res,
				Err:      err,
				Elapsed:  time.Since(start),
			}

			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			return nil
		})
	}

	err := g.Wait()
	return outcomes, err
}
