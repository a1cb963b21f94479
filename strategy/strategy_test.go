package strategy

import (
	"testing"

	"github.com/gomlx/distplan"
	"github.com/stretchr/testify/require"
)

func leafNode(name, dest string) *Node {
	return &Node{
		VarName: name,
		Sync:    &PSSynchronizer{Sync: true, ReductionDestination: dest},
	}
}

func TestNodeLeaves(t *testing.T) {
	leaf := leafNode("w0", "/device:CPU:0")
	require.False(t, leaf.Sharded())
	require.Equal(t, []*Node{leaf}, leaf.Leaves())
	require.NoError(t, leaf.Validate())

	part := NewPartition(2, 0, 2)
	composite := &Node{
		VarName:   "w1",
		Partition: &part,
		Shards: []*Node{
			leafNode("w1/part_0", "/device:CPU:0"),
			{VarName: "w1/part_1", Sync: &AllReduceSynchronizer{Spec: SpecAuto, Compressor: CompressorNone, Group: 0}},
		},
	}
	require.True(t, composite.Sharded())
	require.Len(t, composite.Leaves(), 2)
	require.NoError(t, composite.Validate())
}

func TestNodeValidate(t *testing.T) {
	require.ErrorIs(t, (&Node{}).Validate(), distplan.ErrInvariant)

	// Leaf without a synchronizer.
	require.ErrorIs(t, (&Node{VarName: "w"}).Validate(), distplan.ErrInvariant)

	// PS leaf without a reduction destination.
	n := &Node{VarName: "w", Sync: &PSSynchronizer{Sync: true}}
	require.ErrorIs(t, n.Validate(), distplan.ErrInvariant)

	// All-reduce leaf whose group was never assigned.
	n = &Node{VarName: "w", Sync: &AllReduceSynchronizer{Group: GroupUnassigned}}
	require.ErrorIs(t, n.Validate(), distplan.ErrInvariant)

	// Shard count disagrees with the partition.
	part := NewPartition(1, 0, 3)
	n = &Node{VarName: "w", Partition: &part, Shards: []*Node{leafNode("w/part_0", "d")}}
	require.ErrorIs(t, n.Validate(), distplan.ErrInvariant)

	// Composite carrying its own synchronizer.
	n = &Node{
		VarName:   "w",
		Partition: &part,
		Sync:      &PSSynchronizer{ReductionDestination: "d"},
		Shards:    []*Node{leafNode("w/part_0", "d"), leafNode("w/part_1", "d"), leafNode("w/part_2", "d")},
	}
	require.ErrorIs(t, n.Validate(), distplan.ErrInvariant)
}

func TestStrategyValidate(t *testing.T) {
	s := New()
	require.NotEmpty(t, s.ID)
	s.Replicas = []string{"/device:GPU:0", "/device:GPU:1"}
	part := NewPartition(2, 1, 2)
	s.Nodes = []*Node{
		leafNode("w0", "/device:CPU:0"),
		{
			VarName:   "w1",
			Partition: &part,
			Shards: []*Node{
				leafNode("w1/part_0", "/device:CPU:0"),
				{VarName: "w1/part_1", Sync: &AllReduceSynchronizer{Group: 2}},
			},
		},
	}
	require.NoError(t, s.Validate())

	str := s.String()
	require.Contains(t, str, s.ID)
	require.Contains(t, str, "2 replicas")
	require.Contains(t, str, "2 nodes")
	require.Contains(t, str, "2 PS leaves")
	require.Contains(t, str, "1 all-reduce leaves")

	// Names must be unique across the whole document.
	s.Nodes[1].Shards[0].VarName = "w0"
	require.ErrorIs(t, s.Validate(), distplan.ErrInvariant)

	// Fresh documents never share an id.
	require.NotEqual(t, New().ID, New().ID)
}
