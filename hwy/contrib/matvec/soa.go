package matvec

import "github.com/ajroetker/soamatvec/hwy"

// SOAMatrix is a rows x cols float32 matrix in padded column-major
// (structure-of-arrays) layout.
//
// Column c occupies RowStride consecutive packs of Lanes elements, with
// RowStride = ceil(rows/Lanes). Element (r,c) is lane r%Lanes of pack
// r/Lanes + c*RowStride. The last pack of every column is padded with
// PaddingValue, so loading any pack of a column reads only that column.
type SOAMatrix struct {
	rows      int
	cols      int
	lanes     int
	rowStride int       // packs per column
	data      []float32 // len = rowStride*lanes*cols, hwy.Alignment-aligned
}

// NewSOAMatrix returns a rows x cols matrix with every element set to
// initial. Padding cells get PaddingValue regardless of initial.
//
// Panics with ErrDegenerateSize if rows or cols is <= 0.
func NewSOAMatrix(rows, cols int, initial float32, opts ...Option) *SOAMatrix {
	o := newOptions(opts)
	m := newSOAMatrix(rows, cols, o.layoutLanes())
	if initial != 0 {
		for c := range cols {
			col := m.Column(c)
			for r := range rows {
				col[r] = initial
			}
		}
	}
	return m
}

func newSOAMatrix(rows, cols, lanes int) *SOAMatrix {
	checkExtent(rows, cols)
	stride := hwy.PadSize(rows, lanes)
	return &SOAMatrix{
		rows:      rows,
		cols:      cols,
		lanes:     lanes,
		rowStride: stride,
		// AllocAligned zeroes the array, which already is PaddingValue.
		data: hwy.AllocAligned[float32](stride * lanes * cols),
	}
}

// BuildLayout converts a row-major matrix into the padded SOA layout.
//
// The result has the same shape and the same logical values; only the
// physical arrangement changes. Every padding cell reads PaddingValue.
func BuildLayout(m *Matrix, opts ...Option) *SOAMatrix {
	o := newOptions(opts)
	soa := newSOAMatrix(m.rows, m.cols, o.layoutLanes())

	for r := range m.rows {
		row := m.data[r*m.cols : (r+1)*m.cols]
		for c, x := range row {
			soa.data[soa.offset(r, c)] = x
		}
	}
	return soa
}

// ToMatrix converts the matrix back to row-major layout, dropping padding.
func (m *SOAMatrix) ToMatrix() *Matrix {
	out := &Matrix{rows: m.rows, cols: m.cols, data: make([]float32, m.rows*m.cols)}
	for c := range m.cols {
		col := m.Column(c)
		for r := range m.rows {
			out.data[r*m.cols+c] = col[r]
		}
	}
	return out
}

// Rows returns the number of logical rows.
func (m *SOAMatrix) Rows() int { return m.rows }

// Columns returns the number of columns.
func (m *SOAMatrix) Columns() int { return m.cols }

// Lanes returns the pack lane count.
func (m *SOAMatrix) Lanes() int { return m.lanes }

// RowStride returns the number of packs per column, ceil(Rows/Lanes).
func (m *SOAMatrix) RowStride() int { return m.rowStride }

// NumPacks returns the total number of packs, RowStride*Columns.
func (m *SOAMatrix) NumPacks() int { return m.rowStride * m.cols }

// Pack returns pack i as a Lanes-long view. Pack i belongs to column
// i/RowStride and covers rows (i%RowStride)*Lanes onward.
func (m *SOAMatrix) Pack(i int) []float32 {
	if i < 0 || i >= m.NumPacks() {
		panic(indexError("pack", i, m.NumPacks()))
	}
	off := i * m.lanes
	return m.data[off : off+m.lanes : off+m.lanes]
}

// Column returns the padded run of column c: RowStride*Lanes elements whose
// first Rows entries are the column's values.
func (m *SOAMatrix) Column(c int) []float32 {
	if c < 0 || c >= m.cols {
		panic(indexError("column", c, m.cols))
	}
	n := m.rowStride * m.lanes
	return m.data[c*n : (c+1)*n : (c+1)*n]
}

// At returns element (r,c).
func (m *SOAMatrix) At(r, c int) float32 {
	m.checkIndex(r, c)
	return m.data[m.offset(r, c)]
}

// Set sets element (r,c) to x.
func (m *SOAMatrix) Set(r, c int, x float32) {
	m.checkIndex(r, c)
	m.data[m.offset(r, c)] = x
}

// offset maps (r,c) to pack r/lanes + c*rowStride, lane r%lanes.
func (m *SOAMatrix) offset(r, c int) int {
	return (r/m.lanes+c*m.rowStride)*m.lanes + r%m.lanes
}

func (m *SOAMatrix) checkIndex(r, c int) {
	if r < 0 || r >= m.rows {
		panic(indexError("row", r, m.rows))
	}
	if c < 0 || c >= m.cols {
		panic(indexError("column", c, m.cols))
	}
}
