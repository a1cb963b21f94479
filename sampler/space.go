package sampler

import (
	"slices"

	"github.com/gomlx/distplan"
	"github.com/gomlx/distplan/strategy"
	"github.com/pkg/errors"
)

// Space bounds the choices the sampler may draw for each decision. The zero
// value is not usable; start from DefaultSpace and restrict.
type Space struct {
	// SyncKinds lists the synchronizer kinds to draw from for dense
	// parameters. Sparse parameters always synchronize through a parameter
	// server, regardless of this list.
	SyncKinds []strategy.SyncKind

	// MaybePartition lists the allowed outcomes of the partition decision.
	// A single-element list forces the outcome for every parameter.
	MaybePartition []bool

	// Compressors lists the gradient compressors to draw from for
	// all-reduce records. Required when SyncKinds allows SyncAllReduce.
	Compressors []strategy.Compressor

	// LocalReplication lists the allowed outcomes of the local-replication
	// decision for parameter-server records on clusters with more
	// accelerators than aggregation devices.
	LocalReplication []bool

	// PartitionAxes, when non-empty, globally restricts the axes any
	// parameter may be partitioned along. Empty means no restriction.
	PartitionAxes []int
}

// DefaultSpace returns the full sampling space: both synchronizer kinds,
// both partition outcomes, the three compressors that preserve or correct
// the gradient values, no local replication and no axis restriction.
func DefaultSpace() Space {
	return Space{
		SyncKinds:      []strategy.SyncKind{strategy.SyncPS, strategy.SyncAllReduce},
		MaybePartition: []bool{true, false},
		Compressors: []strategy.Compressor{
			strategy.CompressorHorovod,
			strategy.CompressorNone,
			strategy.CompressorHorovodEF,
		},
		LocalReplication: []bool{false},
	}
}

func (s Space) clone() Space {
	s.SyncKinds = slices.Clone(s.SyncKinds)
	s.MaybePartition = slices.Clone(s.MaybePartition)
	s.Compressors = slices.Clone(s.Compressors)
	s.LocalReplication = slices.Clone(s.LocalReplication)
	s.PartitionAxes = slices.Clone(s.PartitionAxes)
	return s
}

// validate returns an error wrapping distplan.ErrConfig on the first
// problem found, nil if the space is usable.
func (s Space) validate() error {
	if len(s.SyncKinds) == 0 {
		return errors.Wrap(distplan.ErrConfig, "space: no synchronizer kinds to sample from")
	}
	allowAllReduce := false
	for _, kind := range s.SyncKinds {
		if !kind.IsASyncKind() {
			return errors.Wrapf(distplan.ErrConfig, "space: unknown synchronizer kind %d", int(kind))
		}
		if kind == strategy.SyncAllReduce {
			allowAllReduce = true
		}
	}
	if len(s.MaybePartition) == 0 {
		return errors.Wrap(distplan.ErrConfig, "space: no partition outcomes to sample from")
	}
	for _, c := range s.Compressors {
		if !c.IsACompressor() {
			return errors.Wrapf(distplan.ErrConfig, "space: unknown compressor %d", int(c))
		}
	}
	if allowAllReduce && len(s.Compressors) == 0 {
		return errors.Wrap(distplan.ErrConfig, "space: all-reduce is allowed but there are no compressors to sample from")
	}
	// Sparse parameters force PS synchronizers, so local replication can
	// come up even when SyncKinds excludes SyncPS.
	if len(s.LocalReplication) == 0 {
		return errors.Wrap(distplan.ErrConfig, "space: no local-replication outcomes to sample from")
	}
	for _, axis := range s.PartitionAxes {
		if axis < 0 {
			return errors.Wrapf(distplan.ErrConfig, "space: negative partition axis %d", axis)
		}
	}
	return nil
}
