package groupers

import (
	"math/rand"
)

func init() {
	Register("ordered_balanced", OrderedBalanced)
}

// OrderedBalanced walks the items in descending byte size and assigns each
// one to the currently lightest of the k groups, ties resolved to the lowest
// group id. This evens out the per-group communication volume.
func OrderedBalanced(rng *rand.Rand, items []Item, k int) []int {
	mustPositive(k)
	loads := make([]float64, k)
	groups := make([]int, len(items))
	for _, idx := range byDescendingBytes(items) {
		best := 0
		for g := 1; g < k; g++ {
			if loads[g] < loads[best] {
				best = g
			}
		}
		loads[best] += items[idx].Bytes
		groups[idx] = best
	}
	return groups
}
