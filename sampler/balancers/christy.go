package balancers

import (
	"math/rand"
)

func init() {
	Register("christy", Christy)
	Register("sorted_christy", SortedChristy)
}

// Christy fills the devices contiguously: walking the items in order, it
// accumulates bytes onto the current device and moves to the next device
// once the current one reaches its even share of the total (total bytes over
// number of devices). The last device absorbs any overflow. Contiguity keeps
// parameters that are adjacent in the model on the same device.
func Christy(rng *rand.Rand, items []Item, devices []string) []string {
	mustDevices(devices)
	return fillContiguously(items, indexOrder(len(items)), devices)
}

// SortedChristy applies the same contiguous filling to the items taken in
// descending byte size, so the heaviest items spread over the devices first.
// Destinations still align to the original item order.
func SortedChristy(rng *rand.Rand, items []Item, devices []string) []string {
	mustDevices(devices)
	return fillContiguously(items, byDescendingBytes(items), devices)
}

func indexOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func fillContiguously(items []Item, order []int, devices []string) []string {
	var total float64
	for _, item := range items {
		total += item.Bytes
	}
	budget := total / float64(len(devices))

	destinations := make([]string, len(items))
	device := 0
	var load float64
	for _, idx := range order {
		destinations[idx] = devices[device]
		load += items[idx].Bytes
		if load >= budget && device < len(devices)-1 {
			device++
			load = 0
		}
	}
	return destinations
}
