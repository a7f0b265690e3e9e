package matvec

import "github.com/ajroetker/soamatvec/hwy"

// Transform computes M * v on the packed layout and returns a new Vector of
// m.Rows() elements with the same lane count.
//
// For every input pack the kernel loads the pack once, broadcasts each of
// its lanes, and multiply-accumulates the matching column into the result
// pack by pack. Lanes past the last column are skipped, so padding in v
// never reaches the result. Each row accumulates its columns in order
// 0..C-1, which makes the default result bit-identical to ScalarTransform.
//
// Options: WithFMA, WithVerify.
//
// Panics with ErrShapeMismatch if v.Size() != m.Columns() or the lane
// counts differ, and with ErrVerification when WithVerify is set and the
// check fails.
func Transform(m *SOAMatrix, v *Vector, opts ...Option) *Vector {
	o := newOptions(opts)
	checkOperands("Transform", m, v)

	result := newVector(m.rows, m.lanes, 0)
	transformRows(m, v, result.data, 0, m.rowStride, o.fused)
	return finish(o, m, v, result)
}

// transformRows accumulates M * v into out for the row packs
// [segStart, segEnd). out is the padded result array.
func transformRows(m *SOAMatrix, v *Vector, out []float32, segStart, segEnd int, fused bool) {
	w := m.lanes
	for p := range v.NumPacks() {
		in := hwy.Load(v.Pack(p))
		for i := range w {
			c := p*w + i
			if c >= m.cols {
				break
			}
			accumulateColumn(m.Column(c), hwy.Broadcast(in, i), out, segStart, segEnd, w, fused)
		}
	}
}

// accumulateColumn performs out[s] += col[s] * b for row packs s in
// [segStart, segEnd).
func accumulateColumn(col []float32, b hwy.Vec[float32], out []float32, segStart, segEnd, w int, fused bool) {
	if fused {
		for s := segStart; s < segEnd; s++ {
			off := s * w
			acc := hwy.Load(out[off : off+w])
			acc = hwy.FMA(hwy.Load(col[off:off+w]), b, acc)
			hwy.Store(acc, out[off:off+w])
		}
		return
	}
	for s := segStart; s < segEnd; s++ {
		off := s * w
		acc := hwy.Load(out[off : off+w])
		acc = hwy.MulAdd(hwy.Load(col[off:off+w]), b, acc)
		hwy.Store(acc, out[off:off+w])
	}
}

func checkOperands(op string, m *SOAMatrix, v *Vector) {
	if err := operandError(op, m, v); err != nil {
		panic(err)
	}
}

func operandError(op string, m *SOAMatrix, v *Vector) error {
	if v.size != m.cols {
		return &ShapeError{Op: op, What: "vector size", Want: m.cols, Got: v.size}
	}
	if v.lanes != m.lanes {
		return &ShapeError{Op: op, What: "lanes", Want: m.lanes, Got: v.lanes}
	}
	return nil
}

// finish restores the result padding and runs the optional scalar check.
func finish(o options, m *SOAMatrix, v *Vector, result *Vector) *Vector {
	result.clearPadding()
	if o.verify {
		if err := Compare(ScalarTransform(m, v), result, o.tolerance); err != nil {
			panic(err)
		}
	}
	return result
}
