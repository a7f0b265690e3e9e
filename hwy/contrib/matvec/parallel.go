package matvec

import (
	"sync"

	"github.com/ajroetker/soamatvec/hwy"
	"github.com/ajroetker/soamatvec/hwy/contrib/workerpool"
)

// partials recycles the private accumulators of TransformParallel tasks.
var partials sync.Pool

func getPartial(n int) *[]float32 {
	if bp, ok := partials.Get().(*[]float32); ok && cap(*bp) >= n {
		*bp = (*bp)[:n]
		clear(*bp)
		return bp
	}
	buf := hwy.AllocAligned[float32](n)
	return &buf
}

// TransformParallel computes M * v by forking the broadcast lanes of every
// input pack across pool.
//
// Each task accumulates its share of the pack's columns into a private
// partial result. Partials are then added into the shared result one at a
// time. Merge order depends on scheduling, so the result can differ from
// Transform in the last bits; compare with a tolerance. A nil pool runs on
// the calling goroutine.
//
// Options: WithFMA, WithVerify. Panics like Transform.
func TransformParallel(pool *workerpool.Pool, m *SOAMatrix, v *Vector, opts ...Option) *Vector {
	o := newOptions(opts)
	checkOperands("TransformParallel", m, v)

	w := m.lanes
	n := m.rowStride * w
	result := newVector(m.rows, w, 0)

	for p := range v.NumPacks() {
		in := hwy.Load(v.Pack(p))
		lanes := min(w, m.cols-p*w)

		workerpool.ForkJoin(pool, lanes,
			func(start, end int) *[]float32 {
				bp := getPartial(n)
				for i := start; i < end; i++ {
					accumulateColumn(m.Column(p*w+i), hwy.Broadcast(in, i), *bp, 0, m.rowStride, w, o.fused)
				}
				return bp
			},
			func(bp *[]float32) {
				partial := *bp
				for off := 0; off < n; off += w {
					sum := hwy.Add(hwy.Load(result.data[off:off+w]), hwy.Load(partial[off:off+w]))
					hwy.Store(sum, result.data[off:off+w])
				}
				partials.Put(bp)
			},
		)
	}
	return finish(o, m, v, result)
}

// TransformPartitioned computes M * v by splitting the row packs across
// pool. Every worker runs the full column loop over its own rows, so the
// result is bit-identical to Transform with the same options.
//
// Matrices with fewer rows than the parallel threshold (see
// WithParallelThreshold) and single-worker pools run on the calling
// goroutine.
//
// Options: WithFMA, WithVerify, WithParallelThreshold. Panics like Transform.
func TransformPartitioned(pool *workerpool.Pool, m *SOAMatrix, v *Vector, opts ...Option) *Vector {
	o := newOptions(opts)
	checkOperands("TransformPartitioned", m, v)

	result := newVector(m.rows, m.lanes, 0)
	if m.rows < o.parMinRows || pool.NumWorkers() == 1 {
		transformRows(m, v, result.data, 0, m.rowStride, o.fused)
	} else {
		pool.ParallelFor(m.rowStride, func(start, end int) {
			transformRows(m, v, result.data, start, end, o.fused)
		})
	}
	return finish(o, m, v, result)
}
