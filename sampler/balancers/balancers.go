// Package balancers provides the placement heuristics that assign
// centralized (parameter-server style) records to aggregation devices.
//
// A balancer receives the records of the centralized pool in document order,
// each with its byte size, and returns one destination device per record,
// aligned to the input order. Balancers are selected by name through
// sampler.Heuristics; new ones can be made available with Register.
package balancers

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/gomlx/distplan"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Item is one record of the centralized pool: a qualified parameter (or
// shard) name and its byte size.
type Item struct {
	Name  string
	Bytes float64
}

// Func assigns each item a destination device, returning one device per
// item, aligned to the input order. Implementations must not modify items
// or devices, and must be deterministic given the same rng state.
type Func func(rng *rand.Rand, items []Item, devices []string) []string

var registered = make(map[string]Func)

// Register makes a balancer available to ByName under the given name,
// overwriting any previous registration. To be safe, call Register during
// initialization of a package.
func Register(name string, fn Func) {
	registered[name] = fn
}

// ByName returns the balancer registered under name. The returned error
// wraps distplan.ErrConfig and lists the valid names.
func ByName(name string) (Func, error) {
	fn, found := registered[name]
	if !found {
		return nil, errors.Wrapf(distplan.ErrConfig, "unknown PS load balancer %q, valid values are %v", name, Names())
	}
	return fn, nil
}

// Names returns the registered balancer names, sorted.
func Names() []string {
	names := maps.Keys(registered)
	slices.Sort(names)
	return names
}

// byDescendingBytes returns the item indices sorted by descending byte size,
// stable so equal sizes keep their document order.
func byDescendingBytes(items []Item) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(items[b].Bytes, items[a].Bytes)
	})
	return order
}

func mustDevices(devices []string) {
	if len(devices) == 0 {
		panic(errors.Wrap(distplan.ErrConfig, "no devices to balance over"))
	}
}
