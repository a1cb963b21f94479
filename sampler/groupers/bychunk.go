package groupers

import (
	"math/rand"
)

func init() {
	Register("by_chunk", ByChunk)
}

// ByChunk groups consecutive runs of k items: records i and j share a group
// exactly when i/k == j/k. Here k is the chunk size, not the group count;
// the resulting group ids are dense starting at 0.
func ByChunk(rng *rand.Rand, items []Item, k int) []int {
	mustPositive(k)
	groups := make([]int, len(items))
	for i := range groups {
		groups[i] = i / k
	}
	return groups
}
