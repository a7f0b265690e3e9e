package matvec

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// General returns a gonum view of m. The view shares m's storage.
func (m *Matrix) General() blas32.General {
	return blas32.General{Rows: m.rows, Cols: m.cols, Data: m.data, Stride: m.cols}
}

// GemvTransform computes M * v with gonum's blas32.Gemv. It is an
// independent reference for the packed kernels; gonum's summation order
// differs, so compare its output with a tolerance.
//
// Panics with ErrShapeMismatch if len(v) != m.Columns().
func GemvTransform(m *Matrix, v []float32) []float32 {
	if len(v) != m.cols {
		panic(&ShapeError{Op: "GemvTransform", What: "vector size", Want: m.cols, Got: len(v)})
	}
	y := make([]float32, m.rows)
	blas32.Gemv(blas.NoTrans, 1, m.General(),
		blas32.Vector{N: m.cols, Data: v, Inc: 1},
		0, blas32.Vector{N: m.rows, Data: y, Inc: 1})
	return y
}
