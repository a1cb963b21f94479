package groupers

import (
	"math/rand"
)

func init() {
	Register("christy", Christy)
}

// Christy fills k groups contiguously: walking the items in order, it
// accumulates bytes onto the current group and moves to the next group once
// the current one reaches its even share of the total bytes. The last group
// absorbs any overflow. Contiguity keeps parameters that are adjacent in the
// model fused together.
func Christy(rng *rand.Rand, items []Item, k int) []int {
	mustPositive(k)
	var total float64
	for _, item := range items {
		total += item.Bytes
	}
	budget := total / float64(k)

	groups := make([]int, len(items))
	group := 0
	var load float64
	for i, item := range items {
		groups[i] = group
		load += item.Bytes
		if load >= budget && group < k-1 {
			group++
			load = 0
		}
	}
	return groups
}
