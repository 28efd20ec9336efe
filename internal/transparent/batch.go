// batch.go - Order-insensitive parallel verification of many proofs.
//
// Each verification only reads its own item and the shared immutable Params,
// so items run concurrently with no locking. Results land at the index of
// their item; nothing about one proof's outcome depends on any other proof in
// the batch or on scheduling order.

package transparent

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchItem pairs a proof with the external context it verifies against.
type BatchItem struct {
	Proof   Proof
	Context Context
}

// BatchResult is the outcome for one batch item: exactly one of Result and
// Err is set.
type BatchResult struct {
	Result Result
	Err    error
}

// VerifyBatch verifies items in parallel with at most workers goroutines
// (NumCPU when workers <= 0). A rejection is a per-item result, not a batch
// failure; the returned error is non-nil only when ctx is cancelled before
// all items finish.
func (p *Params) VerifyBatch(ctx context.Context, items []BatchItem, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]BatchResult, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := p.Verify(item.Proof, item.Context)
			results[i] = BatchResult{Result: r, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
