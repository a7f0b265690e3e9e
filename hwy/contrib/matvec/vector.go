package matvec

import (
	"math"
	"strconv"
	"strings"

	"github.com/ajroetker/soamatvec/hwy"
)

// PaddingValue is stored in every padding lane of a Vector or SOAMatrix.
// It is +0.0, the additive identity, so padding never changes a sum.
const PaddingValue float32 = 0

// Vector is a vector of Size float32 elements stored as NumPacks packs of
// Lanes elements each. Elements at index >= Size are padding and always hold
// PaddingValue.
//
// Element i lives in pack i/Lanes at lane i%Lanes. Because packs are
// contiguous this is also offset i of the backing array.
type Vector struct {
	size  int
	lanes int
	data  []float32 // len = NumPacks*lanes, hwy.Alignment-aligned
}

// NewVector returns a vector of size elements, each set to initial.
// Padding lanes get PaddingValue regardless of initial.
//
// Panics with ErrDegenerateSize if size <= 0.
func NewVector(size int, initial float32, opts ...Option) *Vector {
	o := newOptions(opts)
	return newVector(size, o.layoutLanes(), initial)
}

// VectorFrom returns a vector holding a copy of values.
//
// Panics with ErrDegenerateSize if values is empty.
func VectorFrom(values []float32, opts ...Option) *Vector {
	o := newOptions(opts)
	v := newVector(len(values), o.layoutLanes(), 0)
	copy(v.data, values)
	return v
}

func newVector(size, lanes int, initial float32) *Vector {
	if size <= 0 {
		panic(degenerateError("vector size", size))
	}
	v := &Vector{
		size:  size,
		lanes: lanes,
		data:  hwy.AllocAligned[float32](hwy.PadSize(size, lanes) * lanes),
	}
	// AllocAligned zeroes the array, which already is PaddingValue.
	if math.Float32bits(initial) != 0 {
		for i := range size {
			v.data[i] = initial
		}
	}
	return v
}

// Size returns the logical element count.
func (v *Vector) Size() int { return v.size }

// Lanes returns the pack lane count.
func (v *Vector) Lanes() int { return v.lanes }

// NumPacks returns the number of packs, ceil(Size/Lanes).
func (v *Vector) NumPacks() int { return len(v.data) / v.lanes }

// Pack returns pack i as a Lanes-long view into the vector.
// Writes through the view are visible in the vector; callers must leave the
// padding lanes at PaddingValue.
func (v *Vector) Pack(i int) []float32 {
	if i < 0 || i >= v.NumPacks() {
		panic(indexError("pack", i, v.NumPacks()))
	}
	off := i * v.lanes
	return v.data[off : off+v.lanes : off+v.lanes]
}

// Packed returns the whole padded backing array, NumPacks*Lanes long.
// The slice aliases the vector.
func (v *Vector) Packed() []float32 { return v.data }

// At returns element i.
func (v *Vector) At(i int) float32 {
	if i < 0 || i >= v.size {
		panic(indexError("element", i, v.size))
	}
	return v.data[i]
}

// Set sets element i to x.
func (v *Vector) Set(i int, x float32) {
	if i < 0 || i >= v.size {
		panic(indexError("element", i, v.size))
	}
	v.data[i] = x
}

// Values returns a copy of the Size logical elements.
func (v *Vector) Values() []float32 {
	out := make([]float32, v.size)
	copy(out, v.data[:v.size])
	return out
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	c := &Vector{
		size:  v.size,
		lanes: v.lanes,
		data:  hwy.AllocAligned[float32](len(v.data)),
	}
	copy(c.data, v.data)
	return c
}

// Equal reports whether v and o have the same size and bitwise-identical
// elements. Lane counts and padding are not compared.
func (v *Vector) Equal(o *Vector) bool {
	if v.size != o.size {
		return false
	}
	for i := range v.size {
		if math.Float32bits(v.data[i]) != math.Float32bits(o.data[i]) {
			return false
		}
	}
	return true
}

// String formats the logical elements like a slice.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range v.size {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(float64(v.data[i]), 'g', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

// clearPadding restores PaddingValue in the padding lanes. Kernels call it
// on their result: 0 * Inf in a padded row is NaN.
func (v *Vector) clearPadding() {
	clear(v.data[v.size:])
}
