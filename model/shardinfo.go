package model

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/distplan"
	"github.com/gomlx/distplan/strategy"
	"github.com/gomlx/distplan/types/shapes"
	"github.com/pkg/errors"
)

// ShardInfo is the metadata view of one shard of a partitioned parameter.
// Shards are created by VarInfo.Shards, never directly.
type ShardInfo struct {
	// Name is the qualified shard name, "<parent>/part_<index>".
	Name string

	// Index of the shard along the partition axis.
	Index int

	// Parent is the view of the partitioned parameter.
	Parent *VarInfo

	// Partition that produced the shard.
	Partition strategy.Partition

	// Shape of the shard value.
	Shape shapes.Shape
}

// Shards materializes the per-shard views of the parameter under the given
// partition. Shard extents on the partition axis follow the even-remainder
// split of shapes.SplitDim and sum to the parent extent; the other axes are
// unchanged.
//
// It panics wrapping distplan.ErrInvariant when the partition does not fit
// the parameter: rank mismatch, or more shards than elements on the axis.
func (v *VarInfo) Shards(p strategy.Partition) []*ShardInfo {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	if len(p.Dims) != v.Shape.Rank() {
		panic(errors.Wrapf(distplan.ErrInvariant, "%s: partition %q has rank %d, parameter has rank %d",
			v.Name, p, len(p.Dims), v.Shape.Rank()))
	}
	axis := p.Axis()
	n := p.NumShards()
	shardShapes := v.Shape.Split(axis, n)
	shards := make([]*ShardInfo, n)
	for i, shape := range shardShapes {
		shards[i] = &ShardInfo{
			Name:      fmt.Sprintf("%s/part_%d", v.Name, i),
			Index:     i,
			Parent:    v,
			Partition: p,
			Shape:     shape,
		}
	}
	return shards
}

// IsSparse reports whether the parent parameter receives sparse updates.
func (s *ShardInfo) IsSparse() bool { return s.Parent.IsSparse() }

// ByteSize returns the shard's share of the parent byte size, proportional
// to its extent on the partition axis. The shares of all shards of a
// parameter add up to the parent's ByteSize.
func (s *ShardInfo) ByteSize() float64 {
	axis := s.Partition.Axis()
	return s.Parent.ByteSize() * float64(s.Shape.Dim(axis)) / float64(s.Parent.Shape.Dim(axis))
}

// String implements fmt.Stringer.
func (s *ShardInfo) String() string {
	return fmt.Sprintf("%s: %s, %s", s.Name, s.Shape, humanize.Bytes(uint64(s.ByteSize())))
}
