package matvec

// ScalarTransform computes M * v one element at a time, columns outer and
// rows inner. It is the reference the packed kernels are checked against.
//
// Each step rounds the product before adding it, the same arithmetic as
// hwy.MulAdd, so Transform without WithFMA matches it bit for bit.
//
// Panics with ErrShapeMismatch under the same conditions as Transform.
func ScalarTransform(m *SOAMatrix, v *Vector) *Vector {
	checkOperands("ScalarTransform", m, v)

	result := newVector(m.rows, m.lanes, 0)
	for c := range m.cols {
		x := v.At(c)
		for r := range m.rows {
			result.data[r] = float32(m.At(r, c)*x) + result.data[r]
		}
	}
	return result
}
