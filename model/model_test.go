package model

import (
	"fmt"
	"testing"

	"github.com/gomlx/distplan"
	"github.com/gomlx/distplan/strategy"
	"github.com/gomlx/distplan/types/shapes"
	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
)

func TestParam(t *testing.T) {
	p := NewParam("layer0/weights", shapes.Make(dtypes.Float32, 1024, 128), GradDense, "MatMul")
	require.Equal(t, "layer0/weights", p.Name())
	require.Equal(t, GradDense, p.GradKind())
	require.Equal(t, []string{"MatMul"}, p.Consumers())
	require.Equal(t, 1024*128*4, int(p.Shape().Memory()))

	g := Params{p}
	require.Len(t, g.TrainableParameters(), 1)
}

func TestVarInfo(t *testing.T) {
	dense := NewVarInfo(NewParam("w", shapes.Make(dtypes.Float32, 4, 1, 8), GradDense, "MatMul"))
	require.False(t, dense.IsSparse())
	require.False(t, dense.IsEmbedding)
	require.Equal(t, dtypes.Float32, dense.DType())
	require.Equal(t, float64(4*1*8*4), dense.ByteSize())
	// Axes with a single element cannot be split.
	require.Equal(t, []int{0, 2}, dense.PartitionableAxes())

	scalar := NewVarInfo(NewParam("step", shapes.Scalar(dtypes.Int64), GradDense))
	require.Empty(t, scalar.PartitionableAxes())

	sparse := NewVarInfo(NewParam("emb", shapes.Make(dtypes.Float32, 1000, 64), GradSparse))
	require.True(t, sparse.IsSparse())
	require.Equal(t, []int{0}, sparse.PartitionableAxes())

	// A dense table read by a gather op partitions like an embedding.
	emb := NewVarInfo(NewParam("table", shapes.Make(dtypes.Float32, 1000, 64), GradDense, "Identity", "ResourceGather"))
	require.True(t, emb.IsEmbedding)
	require.False(t, emb.IsSparse())
	require.Equal(t, []int{0}, emb.PartitionableAxes())

	require.Contains(t, emb.String(), "table")
	require.Contains(t, emb.String(), "embedding")
}

func TestShards(t *testing.T) {
	v := NewVarInfo(NewParam("w", shapes.Make(dtypes.Float32, 10, 7), GradDense))
	parts := v.Shards(strategy.NewPartition(2, 0, 4))
	require.Len(t, parts, 4)

	wantExtents := []int{3, 3, 2, 2}
	var total float64
	for i, part := range parts {
		require.Equal(t, fmt.Sprintf("w/part_%d", i), part.Name)
		require.Equal(t, i, part.Index)
		require.Equal(t, wantExtents[i], part.Shape.Dimensions[0])
		require.Equal(t, 7, part.Shape.Dimensions[1])
		require.False(t, part.IsSparse())
		require.Same(t, v, part.Parent)
		total += part.ByteSize()
	}
	require.Equal(t, v.ByteSize(), total)

	// Sizes are apportioned by extent: 3/10 of the 280 parent bytes for the
	// first two shards, 2/10 for the last two.
	require.Equal(t, 84.0, parts[0].ByteSize())
	require.Equal(t, 56.0, parts[3].ByteSize())

	// Rank mismatch.
	err := exceptions.TryCatch[error](func() { v.Shards(strategy.NewPartition(3, 0, 2)) })
	require.ErrorIs(t, err, distplan.ErrInvariant)

	// More shards than elements on the axis.
	err = exceptions.TryCatch[error](func() { v.Shards(strategy.NewPartition(2, 1, 8)) })
	require.ErrorIs(t, err, distplan.ErrInvariant)
}
