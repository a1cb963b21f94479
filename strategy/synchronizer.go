package strategy

import "fmt"

// SyncKind distinguishes the two synchronizer variants a leaf node can carry.
type SyncKind int

const (
	// SyncPS is the centralized scheme: updates are aggregated at a
	// designated aggregation device (a parameter-server role).
	SyncPS SyncKind = iota

	// SyncAllReduce is the decentralized scheme: devices exchange updates
	// directly through a collective reduction, optionally compressed.
	SyncAllReduce
)

//go:generate go tool enumer -type=SyncKind -trimprefix=Sync -output=gen_synckind_enumer.go synchronizer.go

// Compressor enumerates the gradient compressors available to all-reduce
// synchronizers. CompressorHorovodEF and CompressorPowerSGD change gradient
// values (error-feedback and low-rank approximations, respectively).
type Compressor int

const (
	CompressorNone Compressor = iota
	CompressorHorovod
	CompressorHorovodEF
	CompressorPowerSGD
)

//go:generate go tool enumer -type=Compressor -trimprefix=Compressor -output=gen_compressor_enumer.go synchronizer.go

// AllReduceSpec selects the collective implementation. The sampler always
// emits SpecAuto and leaves the concrete choice to the execution layer.
type AllReduceSpec int

const (
	SpecAuto AllReduceSpec = iota
	SpecNCCL
	SpecRing
)

//go:generate go tool enumer -type=AllReduceSpec -trimprefix=Spec -output=gen_allreducespec_enumer.go synchronizer.go

// GroupUnassigned marks an all-reduce synchronizer whose collective group has
// not been assigned yet. Completed strategies never carry it.
const GroupUnassigned = -1

// Synchronizer is the tagged variant carried by every leaf node: exactly one
// of PSSynchronizer or AllReduceSynchronizer. The interface is sealed; the
// strategy-execution layer switches on the concrete type (or on Kind).
type Synchronizer interface {
	fmt.Stringer

	// Kind tags the variant.
	Kind() SyncKind

	isSynchronizer()
}

// PSSynchronizer is the centralized (parameter-server) variant.
type PSSynchronizer struct {
	// Sync is whether updates are applied synchronously. Asynchronous PS
	// updates are not modeled; the sampler always emits true.
	Sync bool

	// Staleness bounds how many steps an update may lag. Always 0.
	Staleness int

	// LocalReplication is whether parameter transfers route through a local
	// transfer device instead of copying directly from the aggregation
	// device to every accelerator.
	LocalReplication bool

	// ReductionDestination is the aggregation device hosting this record,
	// assigned by the placement stage. Empty until then.
	ReductionDestination string
}

// Kind returns SyncPS.
func (*PSSynchronizer) Kind() SyncKind { return SyncPS }

func (*PSSynchronizer) isSynchronizer() {}

// String implements fmt.Stringer.
func (s *PSSynchronizer) String() string {
	dest := s.ReductionDestination
	if dest == "" {
		dest = "<unplaced>"
	}
	return fmt.Sprintf("PS{sync=%t staleness=%d local_replication=%t dest=%s}",
		s.Sync, s.Staleness, s.LocalReplication, dest)
}

// AllReduceSynchronizer is the decentralized (collective-reduction) variant.
type AllReduceSynchronizer struct {
	// Spec selects the collective implementation. Always SpecAuto.
	Spec AllReduceSpec

	// Compressor applied to the exchanged gradients.
	Compressor Compressor

	// Group is the collective-communication group this record is batched
	// into, assigned by the grouping stage. GroupUnassigned until then.
	Group int
}

// Kind returns SyncAllReduce.
func (*AllReduceSynchronizer) Kind() SyncKind { return SyncAllReduce }

func (*AllReduceSynchronizer) isSynchronizer() {}

// String implements fmt.Stringer.
func (s *AllReduceSynchronizer) String() string {
	if s.Group == GroupUnassigned {
		return fmt.Sprintf("AllReduce{spec=%s compressor=%s group=<unassigned>}", s.Spec, s.Compressor)
	}
	return fmt.Sprintf("AllReduce{spec=%s compressor=%s group=%d}", s.Spec, s.Compressor, s.Group)
}
