// Package cluster describes the target cluster a distribution strategy is
// sampled for: the ordered list of compute devices (accelerators, one model
// replica each) and the ordered list of aggregation devices (host/CPU
// devices able to hold centralized synchronizer state).
//
// A Spec is immutable once created; the sampler only reads it.
package cluster

import (
	"fmt"
	"slices"
)

// Spec lists the devices of the target cluster.
//
// Device identifiers are opaque strings (e.g. "/job:worker/task:0/device:GPU:1");
// the sampler copies them into the strategy document verbatim. The order of
// each list is meaningful: replicas follow the compute-device order, and
// placement heuristics break ties by aggregation-device order.
type Spec struct {
	compute     []string
	aggregation []string
}

// New creates a Spec from the ordered compute (accelerator) and aggregation
// (host) device lists. The slices are copied.
//
// Either list may be empty: a cluster without aggregation devices can still
// serve all-reduce-only strategies, and sampling fails only when a strategy
// actually needs the missing class of device.
func New(compute, aggregation []string) *Spec {
	return &Spec{
		compute:     slices.Clone(compute),
		aggregation: slices.Clone(aggregation),
	}
}

// ComputeDevices returns a copy of the ordered compute-device identifiers.
func (s *Spec) ComputeDevices() []string {
	return slices.Clone(s.compute)
}

// AggregationDevices returns a copy of the ordered aggregation-device
// identifiers.
func (s *Spec) AggregationDevices() []string {
	return slices.Clone(s.aggregation)
}

// NumCompute returns the number of compute devices.
func (s *Spec) NumCompute() int { return len(s.compute) }

// NumAggregation returns the number of aggregation devices.
func (s *Spec) NumAggregation() int { return len(s.aggregation) }

// String implements fmt.Stringer.
func (s *Spec) String() string {
	return fmt.Sprintf("cluster.Spec{%d compute, %d aggregation}", len(s.compute), len(s.aggregation))
}
