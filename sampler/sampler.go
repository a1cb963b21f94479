// Package sampler draws randomized distribution strategies for a model on a
// cluster.
//
// A Sampler is configured once with a Space (which choices are legal) and
// Heuristics (which legal choices to prefer), and can then Build any number
// of independent strategies:
//
//	s, err := sampler.New(sampler.DefaultSpace(), sampler.DefaultHeuristics())
//	if err != nil { ... }
//	rng := rand.New(rand.NewSource(seed))
//	plan, err := s.Build(graph, resources, rng)
//
// Each Build walks the model's parameters in order and samples, per
// parameter: whether to partition it, into how many shards along which axis,
// and how each resulting record synchronizes its updates -- through a
// parameter server or a collective all-reduce. Parameter-server records then
// receive a reduction destination from the configured balancer, and
// all-reduce records a fused communication group from the configured merge
// scheme. The returned document always passes strategy.Validate.
//
// Build reads all randomness from the caller's rng: the same seed, graph and
// cluster reproduce the same document (modulo its fresh ID). The sampler
// itself is immutable and safe for concurrent Builds with distinct rngs.
package sampler

import (
	"math/rand"
	"time"

	"github.com/gomlx/distplan"
	"github.com/gomlx/distplan/cluster"
	"github.com/gomlx/distplan/model"
	"github.com/gomlx/distplan/sampler/balancers"
	"github.com/gomlx/distplan/sampler/groupers"
	"github.com/gomlx/distplan/sampling"
	"github.com/gomlx/distplan/strategy"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Sampler draws strategies from a fixed Space under fixed Heuristics. Its
// configuration is copied at construction and never mutated afterwards.
type Sampler struct {
	space      Space
	heuristics Heuristics

	balance balancers.Func
	group   groupers.Func
}

// New returns a Sampler for the given space and heuristics. The
// configuration is validated eagerly: empty choice sets, unknown balancer or
// merge-scheme names and unsatisfiable bounds all surface here, as errors
// wrapping distplan.ErrConfig, rather than on the first Build.
func New(space Space, heuristics Heuristics) (*Sampler, error) {
	space = space.clone()
	if err := space.validate(); err != nil {
		return nil, err
	}
	if err := heuristics.validate(); err != nil {
		return nil, err
	}
	s := &Sampler{space: space, heuristics: heuristics}
	var err error
	if s.balance, err = heuristics.resolveBalancer(); err != nil {
		return nil, err
	}
	if s.group, err = heuristics.resolveGrouper(); err != nil {
		return nil, err
	}
	return s, nil
}

// Build draws one complete strategy for the graph on the given cluster,
// reading all randomness from rng. A nil rng gets a time-seeded source,
// which makes the result non-reproducible.
//
// Errors wrap distplan.ErrConfig when the configuration cannot produce a
// legal document for this graph and cluster (for example forcing
// partitioning onto a scalar parameter, or parameter-server records on a
// cluster without aggregation devices), and distplan.ErrInvariant on
// assembly bugs.
func (s *Sampler) Build(g model.Graph, res *cluster.Spec, rng *rand.Rand) (*strategy.Strategy, error) {
	if g == nil {
		return nil, errors.Wrap(distplan.ErrConfig, "Build: nil graph")
	}
	if res == nil {
		return nil, errors.Wrap(distplan.ErrConfig, "Build: nil resource spec")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var st *strategy.Strategy
	err := exceptions.TryCatch[error](func() { st = s.build(g, res, rng) })
	if err != nil {
		return nil, err
	}
	return st, nil
}

// poolRecord pairs a leaf of the document under construction with the byte
// size that placement and grouping balance on. The pools live only for the
// duration of one build.
type poolRecord struct {
	leaf  *strategy.Node
	bytes float64
}

func (s *Sampler) build(g model.Graph, res *cluster.Spec, rng *rand.Rand) *strategy.Strategy {
	st := strategy.New()
	st.Replicas = res.ComputeDevices()

	// Pass 1: per-parameter partition and synchronizer decisions.
	sizes := make(map[string]float64)
	for _, p := range g.TrainableParameters() {
		v := model.NewVarInfo(p)
		node := &strategy.Node{VarName: v.Name}
		if s.decidePartition(rng, v, res) {
			pc := s.samplePartitionConfig(rng, v, res)
			shards := v.Shards(pc)
			syncs := s.sampleShardSynchronizers(rng, len(shards), v.IsSparse(), res)
			node.Partition = &pc
			node.Shards = make([]*strategy.Node, len(shards))
			for i, shard := range shards {
				node.Shards[i] = &strategy.Node{VarName: shard.Name, Sync: syncs[i]}
				sizes[shard.Name] = shard.ByteSize()
			}
		} else {
			node.Sync = s.sampleVarSynchronizer(rng, v.IsSparse(), res)
			sizes[v.Name] = v.ByteSize()
		}
		st.Nodes = append(st.Nodes, node)
		klog.V(2).Infof("sampled node: %s", node)
	}

	// Pass 2: classify the leaves, in document order, into the two pools.
	var ps, ar []poolRecord
	for _, node := range st.Nodes {
		for _, leaf := range node.Leaves() {
			rec := poolRecord{leaf: leaf, bytes: sizes[leaf.VarName]}
			if leaf.Kind() == strategy.SyncPS {
				ps = append(ps, rec)
			} else {
				ar = append(ar, rec)
			}
		}
	}

	// Pass 3: placement for the centralized pool, grouping for the
	// decentralized one.
	if len(ps) > 0 {
		s.placePS(rng, ps, res)
	}
	if len(ar) > 0 {
		s.groupAllReduce(rng, ar)
	}

	if err := st.Validate(); err != nil {
		panic(err)
	}
	klog.V(1).Infof("%s", st)
	return st
}

// placePS draws a reduction destination for every centralized record and
// writes it back into the document.
func (s *Sampler) placePS(rng *rand.Rand, pool []poolRecord, res *cluster.Spec) {
	devices := res.AggregationDevices()
	if len(devices) == 0 {
		panic(errors.Wrap(distplan.ErrConfig, "parameter-server records but no aggregation devices to place them on"))
	}
	items := make([]balancers.Item, len(pool))
	for i, rec := range pool {
		items[i] = balancers.Item{Name: rec.leaf.VarName, Bytes: rec.bytes}
	}
	destinations := s.balance(rng, items, devices)
	if len(destinations) != len(pool) {
		panic(errors.Wrapf(distplan.ErrInvariant, "balancer %q returned %d destinations for %d records",
			s.heuristics.PSLoadBalancer, len(destinations), len(pool)))
	}
	for i, rec := range pool {
		rec.leaf.Sync.(*strategy.PSSynchronizer).ReductionDestination = destinations[i]
	}
}

// groupAllReduce resolves the chunk size or group count, draws a group for
// every decentralized record and writes it back into the document.
func (s *Sampler) groupAllReduce(rng *rand.Rand, pool []poolRecord) {
	k := s.resolveGroupArg(rng, len(pool))
	if k < 1 {
		panic(errors.Wrapf(distplan.ErrInvariant, "resolved non-positive group argument %d", k))
	}
	items := make([]groupers.Item, len(pool))
	for i, rec := range pool {
		items[i] = groupers.Item{Name: rec.leaf.VarName, Bytes: rec.bytes}
	}
	groups := s.group(rng, items, k)
	if len(groups) != len(pool) {
		panic(errors.Wrapf(distplan.ErrInvariant, "merge scheme %q returned %d groups for %d records",
			s.heuristics.MergeScheme, len(groups), len(pool)))
	}
	for i, rec := range pool {
		rec.leaf.Sync.(*strategy.AllReduceSynchronizer).Group = groups[i]
	}
}

// resolveGroupArg returns the chunk size for the chunked scheme, otherwise
// the number of groups, sampling whichever the heuristics do not pin.
func (s *Sampler) resolveGroupArg(rng *rand.Rand, poolSize int) int {
	if s.heuristics.MergeScheme == "by_chunk" {
		if s.heuristics.ChunkSize > 0 {
			return s.heuristics.ChunkSize
		}
		return sampling.Between(rng, 1, poolSize)
	}
	lo := max(1, s.heuristics.NumGroupBounds[0])
	hi := min(poolSize, s.heuristics.NumGroupBounds[1])
	if lo > hi {
		panic(errors.Wrapf(distplan.ErrConfig, "no legal group count in [%d, %d] for a pool of %d records",
			lo, hi, poolSize))
	}
	return sampling.Between(rng, lo, hi)
}
