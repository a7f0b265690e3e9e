package matvec

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// TransformBatch computes M * v for every input, running up to WithWorkers
// transforms at once (default GOMAXPROCS). results[i] corresponds to
// inputs[i].
//
// Every input is shape-checked before any work starts; a mismatch returns
// a *ShapeError naming the offending input. Cancelling ctx stops scheduling
// further inputs and returns ctx.Err(). With WithVerify, the first failed
// check is returned instead of panicking.
func TransformBatch(ctx context.Context, m *SOAMatrix, inputs []*Vector, opts ...Option) ([]*Vector, error) {
	o := newOptions(opts)
	for i, v := range inputs {
		if err := operandError(fmt.Sprintf("TransformBatch[%d]", i), m, v); err != nil {
			return nil, err
		}
	}

	results := make([]*Vector, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, v := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			result := newVector(m.rows, m.lanes, 0)
			transformRows(m, v, result.data, 0, m.rowStride, o.fused)
			result.clearPadding()
			if o.verify {
				if err := Compare(ScalarTransform(m, v), result, o.tolerance); err != nil {
					return fmt.Errorf("input %d: %w", i, err)
				}
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is cancelled once Wait returns; only the caller's ctx matters here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
