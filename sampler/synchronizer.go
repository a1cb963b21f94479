package sampler

import (
	"math/rand"

	"github.com/gomlx/distplan/cluster"
	"github.com/gomlx/distplan/sampling"
	"github.com/gomlx/distplan/strategy"
)

// sampleVarSynchronizer draws the synchronizer of one unpartitioned
// parameter. Sparse parameters always synchronize through a parameter
// server, whatever the space allows.
func (s *Sampler) sampleVarSynchronizer(rng *rand.Rand, sparse bool, res *cluster.Spec) strategy.Synchronizer {
	kind := strategy.SyncPS
	if !sparse {
		kind = sampling.Choice(rng, s.space.SyncKinds)
	}
	return s.newSynchronizer(rng, kind, res)
}

// sampleShardSynchronizers draws one synchronizer per shard of a
// partitioned parameter. SameSyncForShards shares a single kind draw across
// the shards; the per-synchronizer draws (compressor, local replication)
// stay independent either way.
func (s *Sampler) sampleShardSynchronizers(rng *rand.Rand, n int, sparse bool, res *cluster.Spec) []strategy.Synchronizer {
	kinds := make([]strategy.SyncKind, n)
	switch {
	case sparse:
		for i := range kinds {
			kinds[i] = strategy.SyncPS
		}
	case s.heuristics.SameSyncForShards:
		kind := sampling.Choice(rng, s.space.SyncKinds)
		for i := range kinds {
			kinds[i] = kind
		}
	default:
		for i := range kinds {
			kinds[i] = sampling.Choice(rng, s.space.SyncKinds)
		}
	}

	syncs := make([]strategy.Synchronizer, n)
	for i, kind := range kinds {
		syncs[i] = s.newSynchronizer(rng, kind, res)
	}
	return syncs
}

func (s *Sampler) newSynchronizer(rng *rand.Rand, kind strategy.SyncKind, res *cluster.Spec) strategy.Synchronizer {
	if kind == strategy.SyncPS {
		return &strategy.PSSynchronizer{
			// Asynchronous and stale updates are not modeled.
			Sync:             true,
			Staleness:        0,
			LocalReplication: s.sampleLocalReplication(rng, res),
		}
	}
	return &strategy.AllReduceSynchronizer{
		Spec:       strategy.SpecAuto,
		Compressor: sampling.Choice(rng, s.space.Compressors),
		Group:      strategy.GroupUnassigned,
	}
}

// sampleLocalReplication decides whether a parameter-server record routes
// transfers through a local replica. With at most one accelerator per
// aggregation device there is nothing to replicate locally, so the answer
// is a hard false; otherwise it is drawn from the space.
func (s *Sampler) sampleLocalReplication(rng *rand.Rand, res *cluster.Spec) bool {
	if res.NumCompute() <= res.NumAggregation() {
		return false
	}
	return sampling.Choice(rng, s.space.LocalReplication)
}
