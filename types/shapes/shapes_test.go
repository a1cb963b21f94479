/*
 *	Copyright 2023 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package shapes

import (
	"testing"

	"github.com/gomlx/distplan"
	. "github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	invalidShape := Shape{}
	require.False(t, invalidShape.Ok())

	shape0 := Scalar(Float64)
	require.True(t, shape0.Ok())
	require.True(t, shape0.IsScalar())
	require.Equal(t, 0, shape0.Rank())
	require.Equal(t, 1, shape0.Size())
	require.Equal(t, 8, int(shape0.Memory()))
	require.Equal(t, "(Float64)", shape0.String())

	shape1 := Make(Float32, 4, 3, 2)
	require.True(t, shape1.Ok())
	require.False(t, shape1.IsScalar())
	require.Equal(t, 3, shape1.Rank())
	require.Equal(t, 4*3*2, shape1.Size())
	require.Equal(t, 4*4*3*2, int(shape1.Memory()))

	require.Panics(t, func() { Make(Float32, 4, 0) })

	require.True(t, shape1.Equal(Make(Float32, 4, 3, 2)))
	require.False(t, shape1.Equal(Make(Float64, 4, 3, 2)))
	require.False(t, shape1.Equal(Make(Float32, 4, 3)))

	clone := shape1.Clone()
	clone.Dimensions[0] = 7
	require.Equal(t, 4, shape1.Dimensions[0])
}

func TestDim(t *testing.T) {
	shape := Make(Float32, 4, 3, 2)
	require.Equal(t, 4, shape.Dim(0))
	require.Equal(t, 3, shape.Dim(1))
	require.Equal(t, 2, shape.Dim(2))
	require.Equal(t, 4, shape.Dim(-3))
	require.Equal(t, 2, shape.Dim(-1))
	require.Panics(t, func() { _ = shape.Dim(3) })
	require.Panics(t, func() { _ = shape.Dim(-4) })
}

func TestSplitDim(t *testing.T) {
	// 10 elements into 3 shards: 4, 3, 3.
	require.Equal(t, 4, SplitDim(10, 3, 0))
	require.Equal(t, 3, SplitDim(10, 3, 1))
	require.Equal(t, 3, SplitDim(10, 3, 2))
	// Even split.
	require.Equal(t, 5, SplitDim(10, 2, 0))
	require.Equal(t, 5, SplitDim(10, 2, 1))
}

func TestSplit(t *testing.T) {
	shape := Make(Float32, 10, 7)

	parts := shape.Split(0, 4)
	require.Len(t, parts, 4)
	wantDims := []int{3, 3, 2, 2}
	total := 0
	for i, part := range parts {
		require.Equal(t, wantDims[i], part.Dimensions[0])
		require.Equal(t, 7, part.Dimensions[1])
		require.Equal(t, Float32, part.DType)
		total += part.Dimensions[0]
	}
	require.Equal(t, 10, total)

	// Negative axis addresses the last axis.
	parts = shape.Split(-1, 7)
	require.Len(t, parts, 7)
	for _, part := range parts {
		require.Equal(t, 10, part.Dimensions[0])
		require.Equal(t, 1, part.Dimensions[1])
	}

	// More shards than elements on the axis is an invariant violation.
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = r.(error)
			}
		}()
		shape.Split(1, 8)
		return nil
	}()
	require.Error(t, err)
	require.True(t, errors.Is(err, distplan.ErrInvariant))
}
