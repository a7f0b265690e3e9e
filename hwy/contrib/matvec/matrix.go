package matvec

// Matrix is a dense row-major float32 matrix. Element (r,c) is stored at
// data[r*cols+c].
//
// Matrix is the interchange format: build one, then convert it with
// BuildLayout for the packed kernels.
type Matrix struct {
	rows int
	cols int
	data []float32
}

// NewMatrix returns a rows x cols matrix with every element set to initial.
//
// Panics with ErrDegenerateSize if rows or cols is <= 0.
func NewMatrix(rows, cols int, initial float32) *Matrix {
	checkExtent(rows, cols)
	m := &Matrix{rows: rows, cols: cols, data: make([]float32, rows*cols)}
	if initial != 0 {
		for i := range m.data {
			m.data[i] = initial
		}
	}
	return m
}

// MatrixFrom returns a rows x cols matrix holding a copy of data, which must
// be in row-major order.
//
// Panics with ErrShapeMismatch if len(data) != rows*cols.
func MatrixFrom(rows, cols int, data []float32) *Matrix {
	checkExtent(rows, cols)
	if len(data) != rows*cols {
		panic(&ShapeError{Op: "MatrixFrom", What: "data length", Want: rows * cols, Got: len(data)})
	}
	m := &Matrix{rows: rows, cols: cols, data: make([]float32, len(data))}
	copy(m.data, data)
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n, 0)
	for i := range n {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *Matrix) Columns() int { return m.cols }

// Data returns the row-major backing slice. It aliases the matrix.
func (m *Matrix) Data() []float32 { return m.data }

// At returns element (r,c).
func (m *Matrix) At(r, c int) float32 {
	return m.data[m.index(r, c)]
}

// Set sets element (r,c) to x.
func (m *Matrix) Set(r, c int, x float32) {
	m.data[m.index(r, c)] = x
}

func (m *Matrix) index(r, c int) int {
	if r < 0 || r >= m.rows {
		panic(indexError("row", r, m.rows))
	}
	if c < 0 || c >= m.cols {
		panic(indexError("column", c, m.cols))
	}
	return r*m.cols + c
}

func checkExtent(rows, cols int) {
	if rows <= 0 {
		panic(degenerateError("rows", rows))
	}
	if cols <= 0 {
		panic(degenerateError("columns", cols))
	}
}
