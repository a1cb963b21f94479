// Package strategy defines the distribution strategy document emitted by the
// sampler and consumed by the strategy-execution layer.
//
// A Strategy holds one Node per trainable parameter of the model. A node is
// either a leaf -- the whole parameter synchronized by a single Synchronizer
// -- or a composite: a Partition descriptor plus one leaf per shard, each
// shard with its own independent Synchronizer. The Synchronizer itself is a
// tagged variant: centralized (PSSynchronizer) or decentralized
// (AllReduceSynchronizer), never both.
//
// The document is purely structural: it carries no tensor data and performs
// no I/O. Validate checks the internal consistency an execution layer relies
// on: exactly one synchronizer variant per leaf, a reduction destination on
// every PS leaf, a group id on every all-reduce leaf, and shard counts that
// match the partition descriptors.
package strategy

import (
	"fmt"

	"github.com/gomlx/distplan"
	"github.com/gomlx/distplan/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Strategy is the complete distribution strategy for one model on one
// cluster.
type Strategy struct {
	// ID uniquely identifies the document, useful when sampling many
	// candidate strategies for the same model.
	ID string

	// Replicas lists the compute devices that host one model replica each,
	// in cluster order.
	Replicas []string

	// Nodes holds one record per trainable parameter, in the order the
	// parameters were enumerated. The order is stable across runs; only the
	// sampled decisions inside the records are random.
	Nodes []*Node
}

// New returns an empty Strategy with a fresh unique ID.
func New() *Strategy {
	return &Strategy{ID: uuid.NewString()}
}

// Node records the synchronization of one trainable parameter.
//
// A leaf node (Partition == nil) carries the synchronizer of the whole
// parameter in Sync. A composite node (Partition != nil) instead carries one
// leaf node per shard in Shards, ordered by shard index, and its own Sync is
// nil.
type Node struct {
	// VarName is the qualified parameter (or shard) name, globally unique
	// within the document. Shard names are formed as "<parent>/part_<i>".
	VarName string

	// Partition describes how the parameter is split. Nil for leaf nodes.
	Partition *Partition

	// Shards holds the per-shard leaf nodes of a composite node.
	Shards []*Node

	// Sync is the synchronizer variant of a leaf node.
	Sync Synchronizer
}

// Sharded reports whether the node is a composite (partitioned) record.
func (n *Node) Sharded() bool { return n.Partition != nil }

// Leaves returns the leaf records of the node: the node itself when
// unsharded, otherwise its per-shard nodes.
func (n *Node) Leaves() []*Node {
	if n.Sharded() {
		return n.Shards
	}
	return []*Node{n}
}

// Kind returns the synchronizer kind of a leaf node. It panics wrapping
// distplan.ErrInvariant on nodes without a synchronizer of their own.
func (n *Node) Kind() SyncKind {
	if n.Sync == nil {
		panic(errors.Wrapf(distplan.ErrInvariant, "%s: node has no synchronizer", n.VarName))
	}
	return n.Sync.Kind()
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n.Sharded() {
		return fmt.Sprintf("%s partitioned %q into %d shards", n.VarName, n.Partition, len(n.Shards))
	}
	return fmt.Sprintf("%s -> %s", n.VarName, n.Sync)
}

// Validate checks the node invariants. Returned errors wrap
// distplan.ErrInvariant.
func (n *Node) Validate() error {
	if n.VarName == "" {
		return errors.Wrap(distplan.ErrInvariant, "node without a variable name")
	}
	if n.Sharded() {
		if n.Sync != nil {
			return errors.Wrapf(distplan.ErrInvariant, "%s: composite node carries its own synchronizer", n.VarName)
		}
		if err := n.Partition.Validate(); err != nil {
			return errors.WithMessage(err, n.VarName)
		}
		if len(n.Shards) != n.Partition.NumShards() {
			return errors.Wrapf(distplan.ErrInvariant, "%s: partition %q wants %d shards, node carries %d",
				n.VarName, n.Partition, n.Partition.NumShards(), len(n.Shards))
		}
		for _, shard := range n.Shards {
			if shard.Sharded() {
				return errors.Wrapf(distplan.ErrInvariant, "%s: shard %s is itself partitioned", n.VarName, shard.VarName)
			}
			if err := shard.Validate(); err != nil {
				return err
			}
		}
		return nil
	}

	switch sync := n.Sync.(type) {
	case nil:
		return errors.Wrapf(distplan.ErrInvariant, "%s: leaf node without a synchronizer", n.VarName)
	case *PSSynchronizer:
		if sync.ReductionDestination == "" {
			return errors.Wrapf(distplan.ErrInvariant, "%s: PS synchronizer without a reduction destination", n.VarName)
		}
	case *AllReduceSynchronizer:
		if !sync.Spec.IsAAllReduceSpec() {
			return errors.Wrapf(distplan.ErrInvariant, "%s: unknown all-reduce spec %d", n.VarName, int(sync.Spec))
		}
		if !sync.Compressor.IsACompressor() {
			return errors.Wrapf(distplan.ErrInvariant, "%s: unknown compressor %d", n.VarName, int(sync.Compressor))
		}
		if sync.Group < 0 {
			return errors.Wrapf(distplan.ErrInvariant, "%s: all-reduce synchronizer without a group", n.VarName)
		}
	default:
		return errors.Wrapf(distplan.ErrInvariant, "%s: unknown synchronizer variant %T", n.VarName, n.Sync)
	}
	return nil
}

// Validate checks the document invariants: every node validates and no
// qualified name repeats. Returned errors wrap distplan.ErrInvariant.
func (s *Strategy) Validate() error {
	if s.ID == "" {
		return errors.Wrap(distplan.ErrInvariant, "strategy without an id")
	}
	seen := types.MakeSet[string](len(s.Nodes))
	for _, node := range s.Nodes {
		if err := node.Validate(); err != nil {
			return err
		}
		for _, leaf := range append([]*Node{node}, node.Shards...) {
			if seen.Has(leaf.VarName) {
				return errors.Wrapf(distplan.ErrInvariant, "duplicated name %q", leaf.VarName)
			}
			seen.Insert(leaf.VarName)
		}
	}
	return nil
}

// String implements fmt.Stringer with a one-line summary.
func (s *Strategy) String() string {
	var ps, ar int
	for _, node := range s.Nodes {
		for _, leaf := range node.Leaves() {
			if leaf.Sync != nil && leaf.Sync.Kind() == SyncPS {
				ps++
			} else if leaf.Sync != nil {
				ar++
			}
		}
	}
	return fmt.Sprintf("Strategy %s: %d replicas, %d nodes (%d PS leaves, %d all-reduce leaves)",
		s.ID, len(s.Replicas), len(s.Nodes), ps, ar)
}
