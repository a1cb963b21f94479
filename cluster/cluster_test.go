package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpec(t *testing.T) {
	compute := []string{"gpu:0", "gpu:1", "gpu:2", "gpu:3"}
	aggregation := []string{"cpu:0", "cpu:1"}
	spec := New(compute, aggregation)

	require.Equal(t, 4, spec.NumCompute())
	require.Equal(t, 2, spec.NumAggregation())
	require.Equal(t, compute, spec.ComputeDevices())
	require.Equal(t, aggregation, spec.AggregationDevices())

	// The Spec must not alias the caller's slices nor leak its own.
	compute[0] = "mutated"
	require.Equal(t, "gpu:0", spec.ComputeDevices()[0])
	spec.ComputeDevices()[1] = "mutated"
	require.Equal(t, "gpu:1", spec.ComputeDevices()[1])

	require.Equal(t, "cluster.Spec{4 compute, 2 aggregation}", spec.String())
}

func TestSpecEmpty(t *testing.T) {
	spec := New(nil, nil)
	require.Equal(t, 0, spec.NumCompute())
	require.Equal(t, 0, spec.NumAggregation())
	require.Empty(t, spec.ComputeDevices())
	require.Empty(t, spec.AggregationDevices())
}
