package balancers

import (
	"math/rand"
)

func init() {
	Register("greedy", Greedy)
	Register("sorted_greedy", SortedGreedy)
}

// Greedy walks the items in order and assigns each one to the device with
// the least cumulative assigned bytes so far, ties resolved by device order.
func Greedy(rng *rand.Rand, items []Item, devices []string) []string {
	mustDevices(devices)
	loads := make([]float64, len(devices))
	destinations := make([]string, len(items))
	for i, item := range items {
		best := 0
		for d := 1; d < len(loads); d++ {
			if loads[d] < loads[best] {
				best = d
			}
		}
		loads[best] += item.Bytes
		destinations[i] = devices[best]
	}
	return destinations
}

// SortedGreedy is Greedy over the items taken in descending byte size
// (longest processing time first), which tightens the final balance when a
// few items dominate. Destinations still align to the original item order.
func SortedGreedy(rng *rand.Rand, items []Item, devices []string) []string {
	mustDevices(devices)
	loads := make([]float64, len(devices))
	destinations := make([]string, len(items))
	for _, idx := range byDescendingBytes(items) {
		best := 0
		for d := 1; d < len(loads); d++ {
			if loads[d] < loads[best] {
				best = d
			}
		}
		loads[best] += items[idx].Bytes
		destinations[idx] = devices[best]
	}
	return destinations
}
