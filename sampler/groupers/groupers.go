// Package groupers provides the grouping heuristics that merge decentralized
// (all-reduce) records into fused communication groups.
//
// A grouper receives the records of the decentralized pool in document
// order, each with its byte size, and returns one group id per record,
// aligned to the input order. Ids are non-negative and bounded by the group
// count; groups may come out empty. Groupers are selected by name through
// sampler.Heuristics; new ones can be made available with Register.
package groupers

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/gomlx/distplan"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
)

// Item is one record of the decentralized pool: a qualified parameter (or
// shard) name and its byte size.
type Item struct {
	Name  string
	Bytes float64
}

// Func assigns each item a group id. The meaning of k depends on the
// scheme: the chunk size for chunked schemes, the group count otherwise.
// Implementations must not modify items, and must be deterministic given the
// same rng state.
type Func func(rng *rand.Rand, items []Item, k int) []int

var registered = make(map[string]Func)

// Register makes a grouper available to ByName under the given name,
// overwriting any previous registration. To be safe, call Register during
// initialization of a package.
func Register(name string, fn Func) {
	registered[name] = fn
}

// ByName returns the grouper registered under name. The returned error
// wraps distplan.ErrConfig and lists the valid names.
func ByName(name string) (Func, error) {
	fn, found := registered[name]
	if !found {
		return nil, errors.Wrapf(distplan.ErrConfig, "unknown merge scheme %q, valid values are %v", name, Names())
	}
	return fn, nil
}

// Names returns the registered grouper names, sorted.
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

func mustPositive(k int) {
	if k < 1 {
		panic(errors.Wrapf(distplan.ErrConfig, "chunk size or group count must be positive, got %d", k))
	}
}
