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

// Package shapes defines Shape, the parameter shape and DType metadata used
// by the distplan sampler.
//
// It is a trimmed-down sibling of GoMLX's shapes package: a Shape carries the
// DType of the unit element (from github.com/gomlx/gopjrt/dtypes) and the
// extents of its axes. On top of the usual accessors it adds Split, the
// even-remainder axis split that derives shard shapes for partitioned
// parameters.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a parameter.
//   - Axis: the index of a dimension. Its size is the axis' dimension (or extent).
//   - DType: the data type of the unit element.
//   - Scalar: a shape with no axes, a single value of the associated DType.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/distplan"
	"github.com/gomlx/exceptions"
	. "github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Shape represents the shape of a parameter: its element DType and the
// extents of its axes. A rank-0 Shape is a scalar.
//
// Use Make or Scalar to create one. The zero value is invalid (Ok reports
// false).
type Shape struct {
	DType      DType
	Dimensions []int
}

// Make returns a Shape with the given dtype and dimensions.
// It panics if any dimension is <= 0.
func Make(dtype DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim <= 0 {
			exceptions.Panicf("shapes.Make(%s): cannot create a shape with an axis with dimension <= 0", s)
		}
	}
	return s
}

// Scalar returns the rank-0 Shape of the given dtype.
func Scalar(dtype DType) Shape {
	return Shape{DType: dtype}
}

// Ok reports whether this is a valid Shape. The zero value Shape{} is invalid.
func (s Shape) Ok() bool { return s.DType != InvalidDType }

// Rank of the shape, that is, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar reports whether the shape is a scalar, that is, rank 0.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the extent of the given axis. axis can take negative values, in
// which case it counts from the end -- axis=-1 is the last axis. Like slice
// indexing, it panics for an out-of-bounds axis.
func (s Shape) Dim(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += s.Rank()
	}
	if adjusted < 0 || adjusted >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjusted]
}

// Size returns the number of elements of DType the shape holds. It's the
// product of all dimensions; 1 for a scalar.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		size *= d
	}
	return
}

// Memory returns the number of bytes needed to store a value of this shape.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// String implements fmt.Stringer, pretty-printing the shape.
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// Equal compares dtype and dimensions.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType || s.Rank() != s2.Rank() {
		return false
	}
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// SplitDim returns the extent along the split axis of shard idx when an axis
// of the given extent is split into n shards: each shard takes extent/n
// elements and the first extent%n shards take one extra.
func SplitDim(extent, n, idx int) int {
	dim := extent / n
	if idx < extent%n {
		dim++
	}
	return dim
}

// Split returns the shapes of the n shards produced by splitting the given
// axis into n pieces, with the remainder distributed one element at a time to
// the leading shards (so shard extents are non-increasing). All other axes
// keep the parent's extents, and the shard extents along the split axis sum
// to the parent's.
//
// It panics wrapping distplan.ErrInvariant if n < 1 or n exceeds the axis
// extent: a shard may not be empty.
func (s Shape) Split(axis, n int) []Shape {
	extent := s.Dim(axis)
	adjusted := axis
	if adjusted < 0 {
		adjusted += s.Rank()
	}
	if n < 1 || n > extent {
		panic(errors.Wrapf(distplan.ErrInvariant, "cannot split axis %d (extent %d) of %s into %d shards", axis, extent, s, n))
	}
	parts := make([]Shape, n)
	for i := range parts {
		part := s.Clone()
		part.Dimensions[adjusted] = SplitDim(extent, n, i)
		parts[i] = part
	}
	return parts
}
