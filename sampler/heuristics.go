package sampler

import (
	"math"

	"github.com/gomlx/distplan"
	"github.com/gomlx/distplan/sampler/balancers"
	"github.com/gomlx/distplan/sampler/groupers"
	"github.com/pkg/errors"
)

// MatchDeviceCount is the sentinel value for NumPartitionBounds entries
// meaning "as many shards as there are compute devices", resolved against
// the cluster of each Build call.
const MatchDeviceCount = -1

// Heuristics guides which of the legal choices the sampler prefers. The
// zero value fails validation (its shard-count upper bound cannot fit two
// shards); start from DefaultHeuristics and adjust.
type Heuristics struct {
	// PSLoadBalancer names the balancers heuristic that places centralized
	// records onto aggregation devices. Empty means independent uniform
	// placement.
	PSLoadBalancer string

	// MergeScheme names the groupers heuristic that fuses decentralized
	// records into collective groups. Empty means independent uniform
	// groups.
	MergeScheme string

	// ChunkSize pins the chunk size of the "by_chunk" scheme. Zero or
	// negative means sample it anew on each Build.
	ChunkSize int

	// NumGroupBounds bounds (inclusive) the sampled number of all-reduce
	// groups. The effective range is clamped to [1, pool size].
	NumGroupBounds [2]int

	// PartitionByteBounds holds the byte sizes at or below which a
	// parameter is never partitioned, and at or above which it always is.
	// Strictly in between, the outcome is sampled.
	PartitionByteBounds [2]float64

	// PartitionBySize scales the partition chance linearly with the
	// parameter's byte size between the byte bounds, instead of drawing
	// uniformly.
	PartitionBySize bool

	// NumPartitionBounds bounds (inclusive) the sampled shard count.
	// Entries may be MatchDeviceCount to track the cluster's compute
	// device count. The effective lower bound never drops below 2, the
	// effective upper bound never exceeds the partition axis extent.
	NumPartitionBounds [2]int

	// SingleNodeNoPartition skips partitioning entirely on clusters with
	// at most one aggregation device.
	SingleNodeNoPartition bool

	// SameSyncForShards draws one synchronizer kind shared by all shards
	// of a partitioned parameter, instead of one kind per shard. The
	// compressor and local-replication draws remain per shard.
	SameSyncForShards bool
}

// DefaultHeuristics returns the neutral heuristics: uniform placement and
// grouping, sampled chunk size, and effectively unbounded group and shard
// counts.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		PSLoadBalancer:      "",
		MergeScheme:         "",
		ChunkSize:           -1,
		NumGroupBounds:      [2]int{-1, math.MaxInt32},
		PartitionByteBounds: [2]float64{0, math.MaxInt32},
		NumPartitionBounds:  [2]int{2, math.MaxInt32},
	}
}

// validate returns an error wrapping distplan.ErrConfig on the first
// problem found, nil if the heuristics are usable. Balancer and scheme
// names are resolved separately by New.
func (h Heuristics) validate() error {
	if h.PartitionByteBounds[0] > h.PartitionByteBounds[1] {
		return errors.Wrapf(distplan.ErrConfig, "heuristics: inverted partition byte bounds [%g, %g]",
			h.PartitionByteBounds[0], h.PartitionByteBounds[1])
	}
	upper := h.NumPartitionBounds[1]
	if upper != MatchDeviceCount && upper < 2 {
		return errors.Wrapf(distplan.ErrConfig, "heuristics: shard-count upper bound %d can never fit 2 shards", upper)
	}
	lower := h.NumPartitionBounds[0]
	if lower != MatchDeviceCount && lower < 0 {
		return errors.Wrapf(distplan.ErrConfig, "heuristics: negative shard-count lower bound %d", lower)
	}
	return nil
}

// resolveBalancer returns the placement function named by PSLoadBalancer,
// defaulting to uniform placement.
func (h Heuristics) resolveBalancer() (balancers.Func, error) {
	if h.PSLoadBalancer == "" {
		return balancers.Random, nil
	}
	return balancers.ByName(h.PSLoadBalancer)
}

// resolveGrouper returns the grouping function named by MergeScheme,
// defaulting to uniform grouping.
func (h Heuristics) resolveGrouper() (groupers.Func, error) {
	if h.MergeScheme == "" {
		return groupers.Random, nil
	}
	return groupers.ByName(h.MergeScheme)
}
