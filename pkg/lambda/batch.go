package lambda

import (
	"context"
	"sync"

	"github.com/gitrdm/golambda/internal/parallel"
)

// BatchOptions configures NormalizeAll.
type BatchOptions struct {
	// MaxWorkers bounds the number of concurrent reductions.
	// Zero or negative selects the number of CPU cores.
	MaxWorkers int

	// MaxSteps bounds the reduction passes per term. Zero means
	// unbounded, in which case a term without a normal form makes the
	// batch diverge; callers handing over untrusted terms should set a
	// limit.
	MaxSteps int
}

// BatchResult is the outcome for one term of a batch.
type BatchResult struct {
	// Term is the (possibly partially) reduced term.
	Term Term

	// Normal reports whether Term is a normal form. It is false only
	// when MaxSteps ran out before a fixed point was reached.
	Normal bool
}

// NormalizeAll reduces independent terms concurrently on a worker
// pool. Results are returned in input order. Reductions on separate
// terms never interact: the reducer's name supply is the only shared
// state and issues names atomically.
//
// The context is observed while enqueueing work; a reduction that has
// already started runs to completion (or, unbounded, may diverge), so
// cancellation of non-terminating terms requires MaxSteps.
func (r *Reducer) NormalizeAll(ctx context.Context, terms []Term, opts BatchOptions) ([]BatchResult, error) {
	pool := parallel.NewWorkerPool(opts.MaxWorkers)
	defer pool.Shutdown()

	results := make([]BatchResult, len(terms))
	var wg sync.WaitGroup
	for i, term := range terms {
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			if opts.MaxSteps > 0 {
				out, normal := r.NormalizeBounded(term, opts.MaxSteps)
				results[i] = BatchResult{Term: out, Normal: normal}
				return
			}
			results[i] = BatchResult{Term: r.Normalize(term), Normal: true}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
