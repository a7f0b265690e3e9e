package matvec

import "github.com/ajroetker/soamatvec/hwy"

// MulVec computes the row-major matrix-vector product M * v.
//
// Each element result[i] is the dot product of row i with v, accumulated in
// MaxLanes-wide partial sums, reduced, and finished with a scalar tail. The
// summation order differs from Transform, so results agree only within
// rounding. MulVec is an independent reference for the SOA kernels.
//
// Example:
//
//	// 2x3 matrix:
//	//   [1 2 3]
//	//   [4 5 6]
//	m := MatrixFrom(2, 3, []float32{1, 2, 3, 4, 5, 6})
//	result := m.MulVec([]float32{1, 0, 1}) // [4, 10]
//
// Panics with ErrShapeMismatch if len(v) != m.Columns().
func (m *Matrix) MulVec(v []float32) []float32 {
	if len(v) != m.cols {
		panic(&ShapeError{Op: "MulVec", What: "vector size", Want: m.cols, Got: len(v)})
	}

	result := make([]float32, m.rows)
	lanes := hwy.MaxLanes[float32]()

	for i := range m.rows {
		row := m.data[i*m.cols : (i+1)*m.cols]

		// SIMD dot product for this row
		sum := hwy.Zero[float32]()

		var j int
		for j = 0; j+lanes <= m.cols; j += lanes {
			va := hwy.Load(row[j : j+lanes])
			vb := hwy.Load(v[j : j+lanes])
			sum = hwy.MulAdd(va, vb, sum)
		}

		// Reduce and add scalar tail
		acc := hwy.ReduceSum(sum)
		for ; j < m.cols; j++ {
			acc += float32(row[j] * v[j])
		}
		result[i] = acc
	}
	return result
}
