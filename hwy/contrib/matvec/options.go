package matvec

import (
	"fmt"
	"runtime"

	"github.com/ajroetker/soamatvec/hwy"
)

type options struct {
	lanes        int
	fused        bool
	verify       bool
	tolerance    float32
	workers      int
	parMinRows   int
	parMinRowSet bool
}

// Option configures construction and transform behavior.
//
// Layout options (WithLanes) only affect constructors; kernel options are
// ignored by constructors. Transforms always use the lane count of their
// operands.
type Option func(*options)

// WithLanes sets the pack lane count W of a new Vector or SOAMatrix.
//
// The default is hwy.MaxLanes[float32](). W = 1 degenerates to an unpadded
// scalar layout, which is useful as a reference. Constructors panic if lanes
// is outside [1, hwy.MaxVecLanes].
func WithLanes(lanes int) Option {
	return func(o *options) {
		o.lanes = lanes
	}
}

// WithFMA makes the packed kernels use a single-rounding fused multiply-add
// instead of a rounded multiply followed by an add. Results are then no
// longer bit-identical to ScalarTransform.
func WithFMA() Option {
	return func(o *options) {
		o.fused = true
	}
}

// WithVerify cross-checks every packed result against ScalarTransform.
// Transform panics with an error wrapping ErrVerification when an element
// differs by more than tolerance (relative, see Compare); TransformBatch
// returns that error instead.
func WithVerify(tolerance float32) Option {
	return func(o *options) {
		o.verify = true
		o.tolerance = tolerance
	}
}

// WithWorkers bounds the number of inputs TransformBatch processes at once.
// n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum row count for which
// TransformPartitioned forks. Smaller matrices run on the calling goroutine.
// The default comes from MATVEC_PAR_MIN_ROWS (256).
func WithParallelThreshold(rows int) Option {
	return func(o *options) {
		o.parMinRows = rows
		o.parMinRowSet = true
	}
}

func newOptions(opts []Option) options {
	o := options{
		lanes: hwy.MaxLanes[float32](),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if !o.parMinRowSet {
		o.parMinRows = parMinRows
	}
	return o
}

func (o options) layoutLanes() int {
	if o.lanes < 1 || o.lanes > hwy.MaxVecLanes {
		panic(fmt.Errorf("matvec: lane count %d not in [1,%d]", o.lanes, hwy.MaxVecLanes))
	}
	return o.lanes
}
