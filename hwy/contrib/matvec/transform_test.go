package matvec

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/soamatvec/hwy"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLanes = []int{1, 2, 4, 8, 16}

func TestTransform(t *testing.T) {
	embedded := NewMatrix(9, 10, 0)
	for i := range 9 {
		embedded.Set(i, i, 1)
	}

	tests := []struct {
		name string
		m    *Matrix
		v    []float32
		want []float32
	}{
		{
			name: "identity 4x4",
			m:    Identity(4),
			v:    []float32{1, 2, 3, 4},
			want: []float32{1, 2, 3, 4},
		},
		{
			name: "1x1",
			m:    MatrixFrom(1, 1, []float32{1}),
			v:    []float32{1},
			want: []float32{1},
		},
		{
			name: "9x10 drops the last column",
			m:    embedded,
			v:    []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want: []float32{1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name: "3x4",
			m: MatrixFrom(3, 4, []float32{
				1, 2, 3, 4,
				5, 6, 7, 8,
				9, 0, 1, 2,
			}),
			v:    []float32{1, 2, 3, 4},
			want: []float32{30, 70, 20},
		},
		{
			name: "single column",
			m:    MatrixFrom(4, 1, []float32{1, 2, 3, 4}),
			v:    []float32{2},
			want: []float32{2, 4, 6, 8},
		},
	}

	for _, tt := range tests {
		for _, lanes := range testLanes {
			t.Run(fmt.Sprintf("%s/w%d", tt.name, lanes), func(t *testing.T) {
				soa := BuildLayout(tt.m, WithLanes(lanes))
				v := VectorFrom(tt.v, WithLanes(lanes))

				got := Transform(soa, v)
				require.Equal(t, tt.m.Rows(), got.Size())
				assert.Equal(t, lanes, got.Lanes())
				assert.Equal(t, tt.want, got.Values())
			})
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, n := range []int{1, 3, 8, 17, 64} {
		v := VectorFrom(randomValues(rng, n))
		got := Transform(BuildLayout(Identity(n)), v)
		assert.True(t, got.Equal(v), "n=%d: got %v, want %v", n, got, v)
	}
}

func TestTransformShape(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {1, 33}, {33, 1}, {7, 19}, {64, 64}} {
		rows, cols := shape[0], shape[1]
		m := NewSOAMatrix(rows, cols, 1)
		got := Transform(m, NewVector(cols, 1))
		require.Equal(t, rows, got.Size())
		assert.Equal(t, hwy.PadSize(rows, got.Lanes()), got.NumPacks())
		for i := range rows {
			assert.Equal(t, float32(cols), got.At(i))
		}
	}
}

// Every non-multiple shape must give the same bits at any pack width as at
// width 1, where there is no padding at all.
func TestTransformPaddingNeutral(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, shape := range [][2]int{{3, 5}, {9, 10}, {15, 17}, {31, 33}, {100, 7}} {
		rows, cols := shape[0], shape[1]
		aos := randomMatrix(rng, rows, cols)
		values := randomValues(rng, cols)
		ref := Transform(BuildLayout(aos, WithLanes(1)), VectorFrom(values, WithLanes(1)))

		for _, lanes := range testLanes[1:] {
			got := Transform(BuildLayout(aos, WithLanes(lanes)), VectorFrom(values, WithLanes(lanes)))
			assert.True(t, ref.Equal(got), "%dx%d w=%d: got %v, want %v", rows, cols, lanes, got, ref)
		}
	}
}

func TestTransformMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for _, lanes := range testLanes {
		shapes := [][2]int{{1, 1}, {lanes, lanes}, {lanes + 1, lanes}, {3*lanes + 2, 2*lanes + 1}, {50, 37}}
		for _, shape := range shapes {
			rows, cols := shape[0], shape[1]
			t.Run(fmt.Sprintf("%dx%d/w%d", rows, cols, lanes), func(t *testing.T) {
				soa := BuildLayout(randomMatrix(rng, rows, cols), WithLanes(lanes))
				v := VectorFrom(randomValues(rng, cols), WithLanes(lanes))

				want := ScalarTransform(soa, v)
				got := Transform(soa, v)
				assert.True(t, want.Equal(got), "got %v, want %v", got, want)

				fused := Transform(soa, v, WithFMA())
				assert.NoError(t, Compare(want, fused, 1e-5))
			})
		}
	}
}

func TestTransformMatchesMulVec(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	aos := randomMatrix(rng, 23, 41)
	values := randomValues(rng, 41)

	got := Transform(BuildLayout(aos), VectorFrom(values))
	if diff := cmp.Diff(aos.MulVec(values), got.Values(), cmpopts.EquateApprox(1e-5, 1e-5)); diff != "" {
		t.Errorf("Transform() mismatch vs MulVec (-want +got):\n%s", diff)
	}
}

// A row-padding lane times an infinite input is NaN; it must not survive
// into the result padding.
func TestTransformClearsPadding(t *testing.T) {
	m := NewSOAMatrix(3, 2, 1, WithLanes(4))
	v := VectorFrom([]float32{float32(math.Inf(1)), 1}, WithLanes(4))

	got := Transform(m, v)
	assert.True(t, math.IsInf(float64(got.At(0)), 1))
	for _, x := range got.Packed()[got.Size():] {
		assert.Equal(t, math.Float32bits(PaddingValue), math.Float32bits(x))
	}
}

func TestTransformPanics(t *testing.T) {
	m := NewSOAMatrix(4, 4, 1, WithLanes(4))

	t.Run("vector size", func(t *testing.T) {
		for _, size := range []int{3, 5} {
			err := recoverError(func() { Transform(m, NewVector(size, 1, WithLanes(4))) })
			assert.ErrorIs(t, err, ErrShapeMismatch, "size %d", size)
		}
	})

	t.Run("lanes", func(t *testing.T) {
		err := recoverError(func() { Transform(m, NewVector(4, 1, WithLanes(2))) })
		assert.ErrorIs(t, err, ErrShapeMismatch)

		var se *ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "lanes", se.What)
	})

	t.Run("scalar", func(t *testing.T) {
		err := recoverError(func() { ScalarTransform(m, NewVector(3, 1, WithLanes(4))) })
		assert.ErrorIs(t, err, ErrShapeMismatch)
	})
}

func TestTransformWithVerify(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	soa := BuildLayout(randomMatrix(rng, 20, 30))
	v := VectorFrom(randomValues(rng, 30))

	assert.NotPanics(t, func() { Transform(soa, v, WithVerify(0)) })
	assert.NotPanics(t, func() { Transform(soa, v, WithFMA(), WithVerify(1e-5)) })
}

func TestScalarTransform(t *testing.T) {
	soa := BuildLayout(MatrixFrom(2, 3, []float32{1, 2, 3, 4, 5, 6}), WithLanes(4))
	got := ScalarTransform(soa, VectorFrom([]float32{1, 0, 1}, WithLanes(4)))
	assert.Equal(t, []float32{4, 10}, got.Values())
	assert.Equal(t, []float32{4, 10, 0, 0}, got.Packed())
}

// Benchmarks

func BenchmarkTransform(b *testing.B) {
	for _, size := range benchSizes {
		rng := rand.New(rand.NewPCG(1, 2))
		soa := BuildLayout(randomMatrix(rng, size.rows, size.cols))
		v := VectorFrom(randomValues(rng, size.cols))

		b.Run(fmt.Sprintf("%dx%d", size.rows, size.cols), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				Transform(soa, v)
			}
		})
	}
}

func BenchmarkScalarTransform(b *testing.B) {
	rows, cols := 256, 256
	rng := rand.New(rand.NewPCG(1, 2))
	soa := BuildLayout(randomMatrix(rng, rows, cols))
	v := VectorFrom(randomValues(rng, cols))

	b.ReportAllocs()
	for b.Loop() {
		ScalarTransform(soa, v)
	}
}
