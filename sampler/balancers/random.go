package balancers

import (
	"math/rand"

	"github.com/gomlx/distplan/sampling"
)

func init() {
	Register("random", Random)
}

// Random assigns every item an independent uniformly drawn device. It is
// also the assignment used when no balancer is configured.
func Random(rng *rand.Rand, items []Item, devices []string) []string {
	destinations := make([]string, len(items))
	for i := range destinations {
		destinations[i] = sampling.Choice(rng, devices)
	}
	return destinations
}
