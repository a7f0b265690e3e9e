package matvec

import "math"

// Compare checks got against want element by element.
//
// Elements match when they are equal, both NaN, or finite with
// |want-got| <= tol*max(1, |want|). The first failing element is reported
// as a *MismatchError, which wraps ErrVerification. Vectors of different
// sizes yield a *ShapeError. Lane counts and padding are ignored.
func Compare(want, got *Vector, tol float32) error {
	if want.size != got.size {
		return &ShapeError{Op: "Compare", What: "vector size", Want: want.size, Got: got.size}
	}
	for i := range want.size {
		if !closeEnough(want.data[i], got.data[i], tol) {
			return &MismatchError{Index: i, Want: want.data[i], Got: got.data[i], Tolerance: tol}
		}
	}
	return nil
}

func closeEnough(want, got, tol float32) bool {
	w, g := float64(want), float64(got)
	switch {
	case w == g:
		return true
	case math.IsNaN(w) || math.IsNaN(g):
		return math.IsNaN(w) && math.IsNaN(g)
	case math.IsInf(w, 0) || math.IsInf(g, 0):
		return false
	}
	return math.Abs(w-g) <= float64(tol)*math.Max(1, math.Abs(w))
}

// Verify runs Transform and checks its result against ScalarTransform.
// The packed result is returned even when the check fails.
//
// Panics with ErrShapeMismatch like Transform.
func Verify(m *SOAMatrix, v *Vector, tol float32, opts ...Option) (*Vector, error) {
	o := newOptions(opts)
	checkOperands("Verify", m, v)

	got := newVector(m.rows, m.lanes, 0)
	transformRows(m, v, got.data, 0, m.rowStride, o.fused)
	got.clearPadding()
	return got, Compare(ScalarTransform(m, v), got, tol)
}
