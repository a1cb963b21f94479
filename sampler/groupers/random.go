package groupers

import (
	"math/rand"

	"github.com/gomlx/distplan/sampling"
)

func init() {
	Register("random", Random)
}

// Random assigns every item an independent uniform group in [0, k). It is
// also the assignment used when no merge scheme is configured.
func Random(rng *rand.Rand, items []Item, k int) []int {
	return sampling.Partition(rng, k, len(items))
}
