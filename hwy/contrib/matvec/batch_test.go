package matvec

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformBatch(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))
	soa := BuildLayout(randomMatrix(rng, 37, 29), WithLanes(8))

	inputs := make([]*Vector, 20)
	for i := range inputs {
		inputs[i] = VectorFrom(randomValues(rng, 29), WithLanes(8))
	}

	for _, workers := range []int{0, 1, 3} {
		got, err := TransformBatch(context.Background(), soa, inputs, WithWorkers(workers), WithVerify(0))
		require.NoError(t, err)
		require.Len(t, got, len(inputs))
		for i, v := range inputs {
			assert.True(t, Transform(soa, v).Equal(got[i]), "workers=%d input %d", workers, i)
		}
	}
}

func TestTransformBatchEmpty(t *testing.T) {
	got, err := TransformBatch(context.Background(), NewSOAMatrix(2, 2, 1), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTransformBatchShapeMismatch(t *testing.T) {
	soa := NewSOAMatrix(4, 4, 1, WithLanes(4))
	inputs := []*Vector{
		NewVector(4, 1, WithLanes(4)),
		NewVector(3, 1, WithLanes(4)),
	}

	got, err := TransformBatch(context.Background(), soa, inputs)
	assert.Nil(t, got)
	require.ErrorIs(t, err, ErrShapeMismatch)

	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "TransformBatch[1]", se.Op)
}

func TestTransformBatchCancelled(t *testing.T) {
	soa := NewSOAMatrix(8, 8, 1)
	inputs := []*Vector{NewVector(8, 1), NewVector(8, 2)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := TransformBatch(ctx, soa, inputs)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, context.Canceled)
}
