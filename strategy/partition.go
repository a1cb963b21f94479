package strategy

import (
	"strconv"
	"strings"

	"github.com/gomlx/distplan"
	"github.com/pkg/errors"
)

// Partition describes how a parameter is split into shards: Dims holds one
// shard count per axis of the parameter, 1 everywhere except the partition
// axis. The sampler only ever partitions along a single axis.
//
// Its string form (e.g. "1,4,1" for 4 shards along axis 1 of a rank-3
// parameter) is the wire format the strategy-execution layer uses to
// reconstruct shard shapes.
type Partition struct {
	Dims []int
}

// NewPartition returns the Partition of a rank-axes parameter split into
// shards pieces along the given axis.
//
// It panics wrapping distplan.ErrInvariant on a non-positive rank, an axis
// outside [0, rank) or fewer than 2 shards.
func NewPartition(rank, axis, shards int) Partition {
	if rank < 1 || axis < 0 || axis >= rank || shards < 2 {
		panic(errors.Wrapf(distplan.ErrInvariant,
			"NewPartition(rank=%d, axis=%d, shards=%d): axis must be in [0, rank) and shards >= 2",
			rank, axis, shards))
	}
	dims := make([]int, rank)
	for i := range dims {
		dims[i] = 1
	}
	dims[axis] = shards
	return Partition{Dims: dims}
}

// Axis returns the partitioned axis: the first axis with more than one
// shard, or -1 if there is none.
func (p Partition) Axis() int {
	for i, d := range p.Dims {
		if d > 1 {
			return i
		}
	}
	return -1
}

// NumShards returns the total number of shards, the product of Dims.
func (p Partition) NumShards() int {
	n := 1
	for _, d := range p.Dims {
		n *= d
	}
	return n
}

// String returns the comma-separated shard counts, e.g. "1,4,1".
func (p Partition) String() string {
	parts := make([]string, len(p.Dims))
	for i, d := range p.Dims {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

// ParsePartition parses the comma-separated form produced by String.
func ParsePartition(s string) (Partition, error) {
	if s == "" {
		return Partition{}, errors.Wrap(distplan.ErrConfig, "empty partition string")
	}
	fields := strings.Split(s, ",")
	p := Partition{Dims: make([]int, len(fields))}
	for i, field := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Partition{}, errors.Wrapf(distplan.ErrConfig, "partition %q: bad shard count %q", s, field)
		}
		p.Dims[i] = d
	}
	if err := p.Validate(); err != nil {
		return Partition{}, err
	}
	return p, nil
}

// Validate checks that every axis has at least one shard and that exactly
// one axis is partitioned. The returned error wraps distplan.ErrInvariant.
func (p Partition) Validate() error {
	if len(p.Dims) == 0 {
		return errors.Wrap(distplan.ErrInvariant, "partition has no axes")
	}
	partitioned := 0
	for i, d := range p.Dims {
		if d < 1 {
			return errors.Wrapf(distplan.ErrInvariant, "partition %q: axis %d has shard count %d", p, i, d)
		}
		if d > 1 {
			partitioned++
		}
	}
	if partitioned != 1 {
		return errors.Wrapf(distplan.ErrInvariant, "partition %q: want exactly 1 partitioned axis, got %d", p, partitioned)
	}
	return nil
}
