package sampler

import (
	"math/rand"

	"github.com/gomlx/distplan"
	"github.com/gomlx/distplan/cluster"
	"github.com/gomlx/distplan/model"
	"github.com/gomlx/distplan/sampling"
	"github.com/gomlx/distplan/strategy"
	"github.com/gomlx/distplan/types"
	"github.com/pkg/errors"
)

// decidePartition reports whether to partition the parameter. The checks
// run in a fixed order: forced single outcome, single-aggregation-device
// skip, axis availability, byte bounds, and only then a random draw.
func (s *Sampler) decidePartition(rng *rand.Rand, v *model.VarInfo, res *cluster.Spec) bool {
	if len(s.space.MaybePartition) == 1 {
		return s.space.MaybePartition[0]
	}
	if s.heuristics.SingleNodeNoPartition && res.NumAggregation() <= 1 {
		return false
	}

	axes := v.PartitionableAxes()
	if len(axes) == 0 {
		return false
	}
	if len(s.space.PartitionAxes) > 0 && len(intersectAxes(axes, s.space.PartitionAxes)) == 0 {
		return false
	}

	lb, ub := s.heuristics.PartitionByteBounds[0], s.heuristics.PartitionByteBounds[1]
	size := v.ByteSize()
	if size <= lb {
		return false
	}
	if size >= ub {
		return true
	}
	if len(s.space.MaybePartition) != 2 {
		panic(errors.Wrapf(distplan.ErrConfig,
			"space: maybe_partition must offer both outcomes to sample between the byte bounds, got %v",
			s.space.MaybePartition))
	}
	if s.heuristics.PartitionBySize {
		// Larger parameters get a proportionally higher chance.
		return sampling.Bernoulli(rng, (size-lb)/(ub-lb))
	}
	return sampling.Choice(rng, s.space.MaybePartition)
}

// samplePartitionConfig draws the partition descriptor (axis and shard
// count) for a parameter the decision stage marked for partitioning.
//
// It panics wrapping distplan.ErrConfig when no partition axis survives the
// restriction, or when the shard-count bounds leave no legal count for the
// chosen axis.
func (s *Sampler) samplePartitionConfig(rng *rand.Rand, v *model.VarInfo, res *cluster.Spec) strategy.Partition {
	axes := v.PartitionableAxes()
	if len(s.space.PartitionAxes) > 0 {
		axes = intersectAxes(axes, s.space.PartitionAxes)
	}
	if len(axes) == 0 {
		panic(errors.Wrapf(distplan.ErrConfig, "%s: no partition axis available", v.Name))
	}
	axis := sampling.Choice(rng, axes)

	extent := v.Shape.Dim(axis)
	maxShards := min(extent, resolveBound(s.heuristics.NumPartitionBounds[1], res))
	minShards := max(2, resolveBound(s.heuristics.NumPartitionBounds[0], res))
	if minShards > maxShards {
		panic(errors.Wrapf(distplan.ErrConfig, "%s: no legal shard count in [%d, %d] for axis %d of extent %d",
			v.Name, minShards, maxShards, axis, extent))
	}
	shards := sampling.Between(rng, minShards, maxShards)
	return strategy.NewPartition(v.Shape.Rank(), axis, shards)
}

func resolveBound(bound int, res *cluster.Spec) int {
	if bound == MatchDeviceCount {
		return res.NumCompute()
	}
	return bound
}

// intersectAxes filters axes down to the allowed ones, keeping their order.
func intersectAxes(axes, allowed []int) []int {
	allowedSet := types.SetWith(allowed...)
	var kept []int
	for _, axis := range axes {
		if allowedSet.Has(axis) {
			kept = append(kept, axis)
		}
	}
	return kept
}
