package matvec

import (
	"math"
	"testing"

	"github.com/ajroetker/soamatvec/hwy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	tests := []struct {
		size      int
		lanes     int
		wantPacks int
	}{
		{1, 1, 1},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{75, 8, 10},
		{16, 16, 1},
		{17, 16, 2},
	}

	for _, tt := range tests {
		v := NewVector(tt.size, 2.5, WithLanes(tt.lanes))
		assert.Equal(t, tt.size, v.Size())
		assert.Equal(t, tt.lanes, v.Lanes())
		assert.Equal(t, tt.wantPacks, v.NumPacks(), "size=%d lanes=%d", tt.size, tt.lanes)
		require.Len(t, v.Packed(), tt.wantPacks*tt.lanes)

		for i, x := range v.Packed() {
			if i < tt.size {
				assert.Equal(t, float32(2.5), x, "element %d", i)
			} else {
				assert.Equal(t, PaddingValue, x, "padding lane %d", i)
			}
		}
	}
}

func TestVectorDefaultLanes(t *testing.T) {
	v := NewVector(3, 1)
	assert.Equal(t, hwy.MaxLanes[float32](), v.Lanes())
	assert.True(t, hwy.IsAlignedPtr(v.Packed()), "backing array not aligned")
}

func TestVectorPackMapping(t *testing.T) {
	v := VectorFrom(makeRange(10), WithLanes(4))
	require.Equal(t, 3, v.NumPacks())

	for i := range v.Size() {
		assert.Equal(t, v.At(i), v.Pack(i/4)[i%4], "element %d", i)
	}
	assert.Equal(t, []float32{8, 9, 0, 0}, v.Pack(2))

	// Pack views are full-slice expressions: appending must not clobber
	// the next pack.
	p := v.Pack(0)
	assert.Equal(t, 4, cap(p))
	_ = append(p, 99)
	assert.Equal(t, float32(4), v.At(4))
}

func TestVectorAccessors(t *testing.T) {
	v := VectorFrom([]float32{1, 2, 3}, WithLanes(4))
	v.Set(1, -7)
	assert.Equal(t, []float32{1, -7, 3}, v.Values())
	assert.Equal(t, "[1 -7 3]", v.String())

	c := v.Clone()
	assert.True(t, v.Equal(c))
	c.Set(0, 5)
	assert.False(t, v.Equal(c))
	assert.Equal(t, float32(1), v.At(0))

	t.Run("Equal ignores lanes", func(t *testing.T) {
		a := VectorFrom([]float32{1, 2, 3}, WithLanes(1))
		b := VectorFrom([]float32{1, 2, 3}, WithLanes(8))
		assert.True(t, a.Equal(b))
	})

	t.Run("Equal is bitwise", func(t *testing.T) {
		nan := float32(math.NaN())
		a := VectorFrom([]float32{nan})
		b := VectorFrom([]float32{nan})
		assert.True(t, a.Equal(b))

		pos := VectorFrom([]float32{0})
		neg := VectorFrom([]float32{float32(math.Copysign(0, -1))})
		assert.False(t, pos.Equal(neg))
	})

	t.Run("Equal size", func(t *testing.T) {
		assert.False(t, NewVector(2, 0).Equal(NewVector(3, 0)))
	})
}

func TestVectorErrors(t *testing.T) {
	v := NewVector(5, 0, WithLanes(4))

	assert.ErrorIs(t, recoverError(func() { NewVector(0, 1) }), ErrDegenerateSize)
	assert.ErrorIs(t, recoverError(func() { VectorFrom(nil) }), ErrDegenerateSize)
	assert.ErrorIs(t, recoverError(func() { v.At(5) }), ErrIndexOutOfRange)
	assert.ErrorIs(t, recoverError(func() { v.Set(-1, 0) }), ErrIndexOutOfRange)
	assert.ErrorIs(t, recoverError(func() { v.Pack(2) }), ErrIndexOutOfRange)

	assert.Error(t, recoverError(func() { NewVector(3, 0, WithLanes(0)) }))
	assert.Error(t, recoverError(func() { NewVector(3, 0, WithLanes(hwy.MaxVecLanes+1)) }))
}
